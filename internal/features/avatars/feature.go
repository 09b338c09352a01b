package avatars

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Feature bundles the avatar profile endpoints.
type Feature struct {
	service *Service
}

func New(s *store.Collection[model.Avatar]) *Feature {
	return &Feature{service: NewService(s)}
}

func (f *Feature) ID() string { return "avatars" }

// Service exposes the avatar service to features that compose with it.
func (f *Feature) Service() *Service { return f.service }

func (f *Feature) RegisterRoutes(router fiber.Router) {
	h := NewHandler(f.service)

	router.Get("/avatars", h.List)
	router.Get("/avatars/:id", h.Get)
	router.Post("/avatars", h.Create)
	router.Put("/avatars/:id", h.Update)
	router.Delete("/avatars/:id", h.Delete)
}
