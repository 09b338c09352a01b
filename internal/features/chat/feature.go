package chat

import (
	"github.com/gofiber/fiber/v2"

	chatcore "github.com/everkeep/legacy-backend/internal/chat"
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Feature bundles the conversation endpoints.
type Feature struct {
	avatars  *store.Collection[model.Avatar]
	sessions *chatcore.Manager
}

func New(
	avatars *store.Collection[model.Avatar],
	memories *store.Collection[model.Memory],
	interactions *store.Collection[model.Interaction],
	delays chatcore.DelayProvider,
) *Feature {
	return &Feature{
		avatars:  avatars,
		sessions: chatcore.NewManager(memories, interactions, delays),
	}
}

func (f *Feature) ID() string { return "chat" }

func (f *Feature) RegisterRoutes(router fiber.Router) {
	h := NewHandler(f.avatars, f.sessions)

	router.Post("/chat/:avatarId/messages", h.SendMessage)
	router.Get("/chat/:avatarId/transcript", h.Transcript)
}
