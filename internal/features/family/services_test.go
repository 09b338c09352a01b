package family_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everkeep/legacy-backend/internal/features/family"
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

func newService(t *testing.T) *family.Service {
	t.Helper()
	return family.NewService(store.NewFamilyMemberStore(nil, store.Options{}))
}

func TestInviteDerivesPermissionsFromRole(t *testing.T) {
	svc := newService(t)

	member, err := svc.InviteMember(family.Invite{Email: "sarah@example.com", Role: model.RoleAdmin, AvatarID: 1})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, member.Status)
	assert.Equal(t, model.RolePermissions(model.RoleAdmin), member.Permissions)
	assert.False(t, member.InvitedAt.IsZero())
}

func TestInviteDefaultsToViewer(t *testing.T) {
	svc := newService(t)

	member, err := svc.InviteMember(family.Invite{Email: "kin@example.com", AvatarID: 2})
	require.NoError(t, err)

	assert.Equal(t, model.RoleViewer, member.Role)
	assert.Equal(t, model.RolePermissions(model.RoleViewer), member.Permissions)
}

func TestInviteRequiresEmailAndAvatar(t *testing.T) {
	svc := newService(t)

	_, err := svc.InviteMember(family.Invite{Role: model.RoleViewer, AvatarID: 1})
	assert.ErrorIs(t, err, family.ErrInvalidInvite)

	_, err = svc.InviteMember(family.Invite{Email: "kin@example.com"})
	assert.ErrorIs(t, err, family.ErrInvalidInvite)
}

func TestPermissionsMayDivergeFromRole(t *testing.T) {
	svc := newService(t)
	member, err := svc.InviteMember(family.Invite{Email: "kin@example.com", Role: model.RoleViewer, AvatarID: 1})
	require.NoError(t, err)

	// An explicit permission edit is stored verbatim and never
	// reconciled with the role.
	widened := []model.Permission{model.PermViewMemories, model.PermChatWithAvatar, model.PermManageMembers}
	updated, err := svc.Update(member.ID, model.FamilyMemberPatch{Permissions: &widened})
	require.NoError(t, err)

	assert.Equal(t, model.RoleViewer, updated.Role)
	assert.Equal(t, widened, updated.Permissions)
}

func TestRoleNesting(t *testing.T) {
	viewer := model.RolePermissions(model.RoleViewer)
	contributor := model.RolePermissions(model.RoleContributor)
	admin := model.RolePermissions(model.RoleAdmin)

	assert.Subset(t, contributor, viewer)
	assert.Subset(t, admin, contributor)
	assert.Len(t, admin, 4)
}
