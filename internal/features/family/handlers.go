package family

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/everkeep/legacy-backend/internal/features"
	"github.com/everkeep/legacy-backend/internal/model"
)

// Handler exposes family sharing over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/family
func (h *Handler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// Get handles GET /api/family/:id
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	member, err := h.service.Get(id)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(member)
}

// Create handles POST /api/family
func (h *Handler) Create(c *fiber.Ctx) error {
	var payload model.FamilyMember
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(h.service.Create(payload))
}

// InviteMember handles POST /api/family/invites
func (h *Handler) InviteMember(c *fiber.Ctx) error {
	var inv Invite
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	member, err := h.service.InviteMember(inv)
	if err != nil {
		if errors.Is(err, ErrInvalidInvite) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return features.StoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// Update handles PUT /api/family/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := h.service.ResolveID(c.Params("id"))
	if err != nil {
		return features.StoreError(c, err)
	}
	var patch model.FamilyMemberPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	member, err := h.service.Update(id, patch)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(member)
}

// Delete handles DELETE /api/family/:id
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

// Roles handles GET /api/family/roles
func (h *Handler) Roles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"roles":       Roles,
		"permissions": PermissionCatalog,
	})
}
