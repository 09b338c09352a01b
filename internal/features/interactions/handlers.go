package interactions

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/features"
	"github.com/everkeep/legacy-backend/internal/model"
)

// Handler exposes the persisted interaction log over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/interactions?avatarId=
func (h *Handler) List(c *fiber.Ctx) error {
	var avatarID *int
	if raw := c.Query("avatarId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "Invalid avatarId filter",
			})
		}
		avatarID = &id
	}
	return c.JSON(h.service.List(avatarID))
}

// Get handles GET /api/interactions/:id
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	it, err := h.service.Get(id)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(it)
}

// Create handles POST /api/interactions
func (h *Handler) Create(c *fiber.Ctx) error {
	var payload model.Interaction
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(h.service.Create(payload))
}

// Update handles PUT /api/interactions/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	var patch model.InteractionPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	it, err := h.service.Update(id, patch)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(it)
}

// Delete handles DELETE /api/interactions/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	if err := h.service.Delete(id); err != nil {
		return features.StoreError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
