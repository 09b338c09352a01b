package memories

import (
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Filter narrows a memory listing. Zero values mean "no constraint".
type Filter struct {
	AvatarID *int
	Category model.Category
}

func (f Filter) matches(m model.Memory) bool {
	if f.AvatarID != nil && (m.AvatarID == nil || *m.AvatarID != *f.AvatarID) {
		return false
	}
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	return true
}

// Service wraps the memory store with listing filters and the guided
// question bank.
type Service struct {
	store *store.Collection[model.Memory]
}

func NewService(s *store.Collection[model.Memory]) *Service {
	return &Service{store: s}
}

func (s *Service) List(f Filter) []model.Memory {
	all := s.store.GetAll()
	out := make([]model.Memory, 0, len(all))
	for _, m := range all {
		if f.matches(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Service) Get(id int) (model.Memory, error) {
	return s.store.GetByID(id)
}

// Create stores a new memory. The recording flow deliberately leaves
// AvatarID unset; attribution is the caller's decision.
func (s *Service) Create(m model.Memory) model.Memory {
	return s.store.Create(m)
}

func (s *Service) Update(id int, patch model.MemoryPatch) (model.Memory, error) {
	return s.store.Update(id, func(m *model.Memory) { patch.Apply(m) })
}

func (s *Service) Delete(id int) error {
	return s.store.Delete(id)
}

func (s *Service) ResolveID(raw string) (int, error) {
	return s.store.CoerceID(raw)
}

// NextPrompt returns a random guided question that no stored memory
// has answered yet. ok is false when the bank is exhausted.
func (s *Service) NextPrompt() (Prompt, bool) {
	return nextPrompt(s.store.GetAll(), nil)
}
