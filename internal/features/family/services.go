package family

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// ErrInvalidInvite rejects invites missing required fields.
var ErrInvalidInvite = errors.New("invite requires an email and an avatar id")

// RoleInfo describes a role for the invitation UI.
type RoleInfo struct {
	ID          model.Role `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// Roles is the fixed role catalog.
var Roles = []RoleInfo{
	{ID: model.RoleViewer, Name: "Viewer", Description: "Can view memories and chat with avatars"},
	{ID: model.RoleContributor, Name: "Contributor", Description: "Can add memories and chat"},
	{ID: model.RoleAdmin, Name: "Admin", Description: "Full access including member management"},
}

// PermissionInfo describes a capability tag for the invitation UI.
type PermissionInfo struct {
	ID          model.Permission `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

// PermissionCatalog lists every capability tag.
var PermissionCatalog = []PermissionInfo{
	{ID: model.PermViewMemories, Name: "View Memories", Description: "Access to stored memories"},
	{ID: model.PermChatWithAvatar, Name: "Chat with Avatar", Description: "Interact with AI avatar"},
	{ID: model.PermAddMemories, Name: "Add Memories", Description: "Contribute new memories"},
	{ID: model.PermManageMembers, Name: "Manage Members", Description: "Invite/remove family members"},
}

// Invite is the payload of the invitation flow.
type Invite struct {
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	AvatarID int        `json:"avatarId"`
}

// Service wraps the family member store with the invitation flow.
type Service struct {
	store *store.Collection[model.FamilyMember]
}

func NewService(s *store.Collection[model.FamilyMember]) *Service {
	return &Service{store: s}
}

func (s *Service) List() []model.FamilyMember {
	return s.store.GetAll()
}

func (s *Service) Get(id int) (model.FamilyMember, error) {
	return s.store.GetByID(id)
}

// Create stores a member record as supplied, relying on store defaults
// for anything omitted.
func (s *Service) Create(m model.FamilyMember) model.FamilyMember {
	return s.store.Create(m)
}

// InviteMember records a pending invitation. The permission set always
// starts out derived from the role; edits may diverge later and are
// never reconciled.
func (s *Service) InviteMember(inv Invite) (model.FamilyMember, error) {
	if strings.TrimSpace(inv.Email) == "" || inv.AvatarID == 0 {
		return model.FamilyMember{}, ErrInvalidInvite
	}
	role := inv.Role
	if role == "" {
		role = model.RoleViewer
	}
	return s.store.Create(model.FamilyMember{
		Email:       strings.TrimSpace(inv.Email),
		Role:        role,
		AvatarID:    inv.AvatarID,
		Permissions: model.RolePermissions(role),
		Status:      model.StatusPending,
	}), nil
}

func (s *Service) Update(id int, patch model.FamilyMemberPatch) (model.FamilyMember, error) {
	return s.store.Update(id, func(m *model.FamilyMember) { patch.Apply(m) })
}

func (s *Service) Delete(id int) error {
	return s.store.Delete(id)
}

func (s *Service) ResolveID(raw string) (int, error) {
	return s.store.CoerceID(raw)
}
