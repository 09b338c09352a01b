package interactions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Feature bundles the interaction log endpoints.
type Feature struct {
	service *Service
}

func New(s *store.Collection[model.Interaction]) *Feature {
	return &Feature{service: NewService(s)}
}

func (f *Feature) ID() string { return "interactions" }

func (f *Feature) Service() *Service { return f.service }

func (f *Feature) RegisterRoutes(router fiber.Router) {
	h := NewHandler(f.service)

	router.Get("/interactions", h.List)
	router.Get("/interactions/:id", h.Get)
	router.Post("/interactions", h.Create)
	router.Put("/interactions/:id", h.Update)
	router.Delete("/interactions/:id", h.Delete)
}
