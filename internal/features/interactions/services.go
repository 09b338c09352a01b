package interactions

import (
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Service wraps the interaction store with the uniform entity contract.
type Service struct {
	store *store.Collection[model.Interaction]
}

func NewService(s *store.Collection[model.Interaction]) *Service {
	return &Service{store: s}
}

func (s *Service) List(avatarID *int) []model.Interaction {
	all := s.store.GetAll()
	if avatarID == nil {
		return all
	}
	out := make([]model.Interaction, 0, len(all))
	for _, it := range all {
		if it.AvatarID == *avatarID {
			out = append(out, it)
		}
	}
	return out
}

func (s *Service) Get(id int) (model.Interaction, error) {
	return s.store.GetByID(id)
}

func (s *Service) Create(it model.Interaction) model.Interaction {
	return s.store.Create(it)
}

func (s *Service) Update(id int, patch model.InteractionPatch) (model.Interaction, error) {
	return s.store.Update(id, func(it *model.Interaction) { patch.Apply(it) })
}

func (s *Service) Delete(id int) error {
	return s.store.Delete(id)
}

func (s *Service) ResolveID(raw string) (int, error) {
	return s.store.CoerceID(raw)
}
