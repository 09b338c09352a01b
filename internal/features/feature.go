// Package features defines the plugin contract the product's feature
// packages implement. main constructs each feature with the stores it
// needs; routes.Setup mounts them under /api.
package features

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/store"
)

// Feature is one self-contained area of the product (avatars, memories,
// family sharing, chat, home).
type Feature interface {
	// ID returns the unique feature identifier.
	ID() string

	// RegisterRoutes mounts the feature's routes on the given group.
	// The group is already prefixed with /api.
	RegisterRoutes(router fiber.Router)
}

// StoreError translates a store failure into the API error envelope:
// NotFound becomes 404, anything else a masked 500.
func StoreError(c *fiber.Ctx, err error) error {
	if store.IsNotFound(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": true, "message": "Internal server error",
	})
}
