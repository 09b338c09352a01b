package chat

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	chatcore "github.com/everkeep/legacy-backend/internal/chat"
	"github.com/everkeep/legacy-backend/internal/features"
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Handler exposes avatar conversations over HTTP.
type Handler struct {
	avatars  *store.Collection[model.Avatar]
	sessions *chatcore.Manager
}

func NewHandler(avatars *store.Collection[model.Avatar], sessions *chatcore.Manager) *Handler {
	return &Handler{avatars: avatars, sessions: sessions}
}

func (h *Handler) session(c *fiber.Ctx) (*chatcore.Session, error) {
	id, err := h.avatars.CoerceID(c.Params("avatarId"))
	if err != nil {
		return nil, err
	}
	if _, err := h.avatars.GetByID(id); err != nil {
		return nil, err
	}
	return h.sessions.Session(id), nil
}

// SendMessage handles POST /api/chat/:avatarId/messages. The call
// returns once the delayed reply has been delivered and persisted.
func (h *Handler) SendMessage(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return features.StoreError(c, err)
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	turn, err := session.Send(c.UserContext(), req.Message)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(turn)
	case errors.Is(err, chatcore.ErrEmptyMessage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Message must not be empty",
		})
	case errors.Is(err, chatcore.ErrTurnInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": true, "message": "A response is already on its way",
		})
	default:
		slog.Error("chat turn failed", "avatar_id", session.AvatarID, "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": true, "message": "Failed to get response. Please try again.",
		})
	}
}

// Transcript handles GET /api/chat/:avatarId/transcript
func (h *Handler) Transcript(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return features.StoreError(c, err)
	}
	return c.JSON(fiber.Map{
		"sessionId": session.ID,
		"state":     session.State(),
		"entries":   session.Transcript(),
	})
}
