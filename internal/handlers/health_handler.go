package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Records   map[string]int `json:"records"`
}

// HealthHandler reports liveness plus per-store record counts; with
// purely in-memory state the counts are the only thing worth checking.
type HealthHandler struct {
	avatars      *store.Collection[model.Avatar]
	memories     *store.Collection[model.Memory]
	interactions *store.Collection[model.Interaction]
	family       *store.Collection[model.FamilyMember]
}

func NewHealthHandler(
	avatars *store.Collection[model.Avatar],
	memories *store.Collection[model.Memory],
	interactions *store.Collection[model.Interaction],
	family *store.Collection[model.FamilyMember],
) *HealthHandler {
	return &HealthHandler{avatars: avatars, memories: memories, interactions: interactions, family: family}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Records: map[string]int{
			"avatars":       h.avatars.Count(),
			"memories":      h.memories.Count(),
			"interactions":  h.interactions.Count(),
			"familyMembers": h.family.Count(),
		},
	})
}
