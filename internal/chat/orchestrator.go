package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/everkeep/legacy-backend/internal/model"
)

// Sender marks which side of the conversation authored an entry.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderAvatar Sender = "avatar"
)

// Entry is one line of a session transcript.
type Entry struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// State is the per-turn conversation state.
type State string

const (
	StateIdle             State = "idle"
	StateAwaitingResponse State = "awaiting_response"
	StateDelivered        State = "delivered"
	StateFailed           State = "failed"
)

// Turn is the result of one completed chat turn.
type Turn struct {
	UserEntry   Entry             `json:"userEntry"`
	AvatarEntry Entry             `json:"avatarEntry"`
	Interaction model.Interaction `json:"interaction"`
}

var (
	// ErrEmptyMessage rejects blank input before a turn starts.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrTurnInFlight serializes turns: one send at a time per session.
	ErrTurnInFlight = errors.New("a turn is already awaiting its response")
)

// MemorySource supplies the memory set the selector personalizes with.
type MemorySource interface {
	GetAll() []model.Memory
}

// InteractionStore persists completed turns and supplies history.
type InteractionStore interface {
	GetAll() []model.Interaction
	Create(model.Interaction) model.Interaction
}

// Responder produces the avatar's reply for a message. The default
// implementation wraps the rule-table selector and never fails; the
// interface exists so the orchestrator's failure path stays honest.
type Responder interface {
	Respond(message string, avatarID int) (string, error)
}

type selectorResponder struct {
	memories MemorySource
}

func (r selectorResponder) Respond(message string, avatarID int) (string, error) {
	if r.memories == nil {
		return FallbackResponse, nil
	}
	return SelectResponse(message, memoriesFor(r.memories.GetAll(), avatarID)), nil
}

func memoriesFor(all []model.Memory, avatarID int) []model.Memory {
	var out []model.Memory
	for _, m := range all {
		if m.AvatarID != nil && *m.AvatarID == avatarID {
			out = append(out, m)
		}
	}
	return out
}

// Session orchestrates one user's conversation with one avatar. Turns
// are strictly serialized: while a turn awaits its delayed reply, any
// further Send is rejected with ErrTurnInFlight.
type Session struct {
	ID       string
	AvatarID int

	responder    Responder
	interactions InteractionStore
	delays       DelayProvider
	clock        func() time.Time

	mu         sync.Mutex
	state      State
	transcript []Entry
}

// SessionOption tweaks session construction.
type SessionOption func(*Session)

// WithResponder replaces the rule-table responder.
func WithResponder(r Responder) SessionOption {
	return func(s *Session) { s.responder = r }
}

// WithClock pins the session clock.
func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// NewSession builds a session and reconstructs its transcript from the
// persisted interaction log.
func NewSession(avatarID int, memories MemorySource, interactions InteractionStore, delays DelayProvider, opts ...SessionOption) *Session {
	s := &Session{
		ID:           uuid.NewString(),
		AvatarID:     avatarID,
		responder:    selectorResponder{memories: memories},
		interactions: interactions,
		delays:       delays,
		clock:        time.Now,
		state:        StateIdle,
	}
	if s.delays == nil {
		s.delays = NoDelay{}
	}
	for _, opt := range opts {
		opt(s)
	}
	s.transcript = History(interactions, avatarID)
	return s
}

// State returns the current turn state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the session transcript.
func (s *Session) Transcript() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.transcript...)
}

// Send runs one chat turn: the user entry is appended immediately, the
// reply is generated, and after the typing delay the avatar entry is
// appended and the turn persisted as an Interaction. Cancelling ctx
// before delivery abandons the turn without mutating the transcript
// further and without writing an Interaction.
func (s *Session) Send(ctx context.Context, message string) (Turn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.state == StateAwaitingResponse {
		s.mu.Unlock()
		return Turn{}, ErrTurnInFlight
	}
	s.state = StateAwaitingResponse
	userEntry := Entry{
		ID:        uuid.NewString(),
		Sender:    SenderUser,
		Text:      message,
		Timestamp: s.clock(),
	}
	s.transcript = append(s.transcript, userEntry)
	s.mu.Unlock()

	response, err := s.responder.Respond(message, s.AvatarID)
	if err != nil {
		s.setState(StateFailed)
		return Turn{}, errors.Wrap(err, "generate response")
	}

	if err := s.waitTypingDelay(ctx); err != nil {
		s.setState(StateFailed)
		return Turn{}, err
	}

	now := s.clock()
	interaction := s.interactions.Create(model.Interaction{
		AvatarID:  s.AvatarID,
		UserID:    model.PlaceholderUserID,
		Message:   message,
		Response:  response,
		Timestamp: now,
	})

	avatarEntry := Entry{
		ID:        uuid.NewString(),
		Sender:    SenderAvatar,
		Text:      response,
		Timestamp: now,
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, avatarEntry)
	s.state = StateDelivered
	s.mu.Unlock()

	return Turn{UserEntry: userEntry, AvatarEntry: avatarEntry, Interaction: interaction}, nil
}

func (s *Session) waitTypingDelay(ctx context.Context) error {
	d := s.delays.ReplyDelay()
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// History reconstructs a transcript from the persisted interaction log:
// the avatar's interactions ascending by timestamp, each expanded into
// a user entry followed by an avatar entry.
func History(interactions InteractionStore, avatarID int) []Entry {
	var turns []model.Interaction
	for _, it := range interactions.GetAll() {
		if it.AvatarID == avatarID {
			turns = append(turns, it)
		}
	}
	sort.SliceStable(turns, func(i, j int) bool { return turns[i].Timestamp.Before(turns[j].Timestamp) })

	entries := make([]Entry, 0, 2*len(turns))
	for _, it := range turns {
		entries = append(entries,
			Entry{ID: fmt.Sprintf("%d-user", it.ID), Sender: SenderUser, Text: it.Message, Timestamp: it.Timestamp},
			Entry{ID: fmt.Sprintf("%d-avatar", it.ID), Sender: SenderAvatar, Text: it.Response, Timestamp: it.Timestamp},
		)
	}
	return entries
}

// Manager hands out one session per avatar, creating it on first use.
type Manager struct {
	memories     MemorySource
	interactions InteractionStore
	delays       DelayProvider

	mu       sync.Mutex
	sessions map[int]*Session
}

func NewManager(memories MemorySource, interactions InteractionStore, delays DelayProvider) *Manager {
	return &Manager{
		memories:     memories,
		interactions: interactions,
		delays:       delays,
		sessions:     make(map[int]*Session),
	}
}

// Session returns the live session for an avatar, creating one if none
// exists yet. Callers validate the avatar id against the avatar store
// before asking for a session.
func (m *Manager) Session(avatarID int) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[avatarID]; ok {
		return s
	}
	s := NewSession(avatarID, m.memories, m.interactions, m.delays)
	m.sessions[avatarID] = s
	return s
}
