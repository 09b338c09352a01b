package family

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Feature bundles the family sharing endpoints.
type Feature struct {
	service *Service
}

func New(s *store.Collection[model.FamilyMember]) *Feature {
	return &Feature{service: NewService(s)}
}

func (f *Feature) ID() string { return "family" }

func (f *Feature) Service() *Service { return f.service }

func (f *Feature) RegisterRoutes(router fiber.Router) {
	h := NewHandler(f.service)

	// Static segments first so "roles" is never captured by :id.
	router.Get("/family/roles", h.Roles)
	router.Post("/family/invites", h.InviteMember)

	router.Get("/family", h.List)
	router.Get("/family/:id", h.Get)
	router.Post("/family", h.Create)
	router.Put("/family/:id", h.Update)
	router.Delete("/family/:id", h.Delete)
}
