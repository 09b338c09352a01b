package avatars

import (
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// Service wraps the avatar store with the uniform entity contract.
type Service struct {
	store *store.Collection[model.Avatar]
}

func NewService(s *store.Collection[model.Avatar]) *Service {
	return &Service{store: s}
}

func (s *Service) List() []model.Avatar {
	return s.store.GetAll()
}

func (s *Service) Get(id int) (model.Avatar, error) {
	return s.store.GetByID(id)
}

// Create stores a new avatar profile. The identity and, when omitted,
// the creation timestamp are assigned by the store.
func (s *Service) Create(a model.Avatar) model.Avatar {
	return s.store.Create(a)
}

func (s *Service) Update(id int, patch model.AvatarPatch) (model.Avatar, error) {
	return s.store.Update(id, func(a *model.Avatar) { patch.Apply(a) })
}

func (s *Service) Delete(id int) error {
	return s.store.Delete(id)
}

// ResolveID coerces an external id; non-numeric input reads as NotFound.
func (s *Service) ResolveID(raw string) (int, error) {
	return s.store.CoerceID(raw)
}
