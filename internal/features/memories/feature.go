package memories

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Feature bundles the memory collection endpoints.
type Feature struct {
	service *Service
}

func New(s *store.Collection[model.Memory]) *Feature {
	return &Feature{service: NewService(s)}
}

func (f *Feature) ID() string { return "memories" }

func (f *Feature) Service() *Service { return f.service }

func (f *Feature) RegisterRoutes(router fiber.Router) {
	h := NewHandler(f.service)

	// Prompt routes first so "prompts" is never captured by :id.
	router.Get("/memories/prompts", h.Prompts)
	router.Get("/memories/prompts/next", h.NextPrompt)

	router.Get("/memories", h.List)
	router.Get("/memories/:id", h.Get)
	router.Post("/memories", h.Create)
	router.Put("/memories/:id", h.Update)
	router.Delete("/memories/:id", h.Delete)
}
