package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Feature bundles the digital home and dashboard endpoints.
type Feature struct {
	service *Service
}

func New(
	avatars *store.Collection[model.Avatar],
	memories *store.Collection[model.Memory],
	interactions *store.Collection[model.Interaction],
	family *store.Collection[model.FamilyMember],
) *Feature {
	return &Feature{service: NewService(avatars, memories, interactions, family)}
}

func (f *Feature) ID() string { return "home" }

func (f *Feature) RegisterRoutes(router fiber.Router) {
	h := NewHandler(f.service)

	router.Get("/home", h.Home)
	router.Get("/stats", h.Dashboard)
}
