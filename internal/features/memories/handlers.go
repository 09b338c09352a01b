package memories

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/features"
	"github.com/everkeep/legacy-backend/internal/model"
)

// Handler exposes memory CRUD and the guided question bank over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/memories?avatarId=&category=
func (h *Handler) List(c *fiber.Ctx) error {
	var f Filter
	if raw := c.Query("avatarId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "Invalid avatarId filter",
			})
		}
		f.AvatarID = &id
	}
	f.Category = model.Category(c.Query("category"))
	return c.JSON(h.service.List(f))
}

// Get handles GET /api/memories/:id
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	memory, err := h.service.Get(id)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(memory)
}

// Create handles POST /api/memories
func (h *Handler) Create(c *fiber.Ctx) error {
	var payload model.Memory
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(h.service.Create(payload))
}

// Update handles PUT /api/memories/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	var patch model.MemoryPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	memory, err := h.service.Update(id, patch)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(memory)
}

// Delete handles DELETE /api/memories/:id
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

// Prompts handles GET /api/memories/prompts
func (h *Handler) Prompts(c *fiber.Ctx) error {
	return c.JSON(Prompts)
}

// NextPrompt handles GET /api/memories/prompts/next
func (h *Handler) NextPrompt(c *fiber.Ctx) error {
	prompt, ok := h.service.NextPrompt()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": "All available questions have been answered",
		})
	}
	return c.JSON(prompt)
}
