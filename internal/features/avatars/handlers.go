package avatars

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/features"
	"github.com/everkeep/legacy-backend/internal/model"
)

// Handler exposes avatar CRUD over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/avatars
func (h *Handler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// Get handles GET /api/avatars/:id
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	avatar, err := h.service.Get(id)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(avatar)
}

// Create handles POST /api/avatars
func (h *Handler) Create(c *fiber.Ctx) error {
	var payload model.Avatar
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(h.service.Create(payload))
}

// Update handles PUT /api/avatars/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	var patch model.AvatarPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	avatar, err := h.service.Update(id, patch)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(avatar)
}

// Delete handles DELETE /api/avatars/:id
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
