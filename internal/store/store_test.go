package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/seed"
	"github.com/everkeep/legacy-backend/internal/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestCreateAssignsIdentityAndDefaults(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{Clock: fixedClock(now)})

	created := s.Create(model.Avatar{Name: "Margaret Chen", HomeLevel: 1})

	require.Equal(t, 1, created.ID)
	assert.Equal(t, "Margaret Chen", created.Name)
	assert.Equal(t, 1, created.HomeLevel)
	assert.Equal(t, now, created.CreatedAt, "omitted createdAt gets the clock time")

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateKeepsCallerTimestamp(t *testing.T) {
	s := store.NewMemoryStore(nil, store.Options{Clock: fixedClock(now)})

	earlier := now.Add(-48 * time.Hour)
	created := s.Create(model.Memory{Question: "q", Answer: "a", CreatedAt: earlier})

	assert.Equal(t, earlier, created.CreatedAt)
}

func TestIdentityStrictlyIncreasing(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})

	prev := 0
	for i := 0; i < 5; i++ {
		created := s.Create(model.Avatar{Name: "a"})
		assert.Greater(t, created.ID, prev)
		prev = created.ID
	}
}

func TestCounterStartsPastSeedMax(t *testing.T) {
	s := store.NewAvatarStore(seed.Avatars(), store.Options{})

	created := s.Create(model.Avatar{Name: "new"})
	assert.Equal(t, 4, created.ID, "seed holds ids 1..3")
}

func TestIdentitySurvivesDelete(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})

	first := s.Create(model.Avatar{Name: "a"})
	require.NoError(t, s.Delete(first.ID))

	second := s.Create(model.Avatar{Name: "b"})
	assert.Greater(t, second.ID, first.ID, "identities are never reused")
}

func TestGetByIDNotFound(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})

	_, err := s.GetByID(42)
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err))
	assert.EqualError(t, err, "avatar with id 42 not found")
}

func TestCoerceIDNonNumeric(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})

	_, err := s.CoerceID("abc")
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err), "non-numeric ids read as not found, not as a type error")

	id, err := s.CoerceID("7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestUpdateMergesPatch(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{Clock: fixedClock(now)})
	created := s.Create(model.Avatar{Name: "Robert", CompletionPercentage: 60, MemoryCount: 7})

	name := "Robert Okafor"
	pct := 75
	updated, err := s.Update(created.ID, func(a *model.Avatar) {
		model.AvatarPatch{Name: &name, CompletionPercentage: &pct}.Apply(a)
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "identity never changes")
	assert.Equal(t, "Robert Okafor", updated.Name)
	assert.Equal(t, 75, updated.CompletionPercentage)
	assert.Equal(t, 7, updated.MemoryCount, "unpatched fields are retained")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateCannotChangeIdentity(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})
	created := s.Create(model.Avatar{Name: "a"})

	updated, err := s.Update(created.ID, func(a *model.Avatar) { a.ID = 999 })
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	_, err = s.GetByID(999)
	assert.True(t, store.IsNotFound(err))
}

func TestUpdateNotFound(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})

	_, err := s.Update(42, func(a *model.Avatar) { a.Name = "x" })
	assert.True(t, store.IsNotFound(err))
}

func TestDeleteRemovesRecord(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})
	created := s.Create(model.Avatar{Name: "a"})

	require.NoError(t, s.Delete(created.ID))

	_, err := s.GetByID(created.ID)
	assert.True(t, store.IsNotFound(err))
}

func TestDeleteNotFoundLeavesCollection(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})
	s.Create(model.Avatar{Name: "a"})

	err := s.Delete(42)
	assert.True(t, store.IsNotFound(err))
	assert.Equal(t, 1, s.Count())
}

func TestAvatarListingIsNewestFirst(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})
	s.Create(model.Avatar{Name: "first"})
	s.Create(model.Avatar{Name: "second"})
	s.Create(model.Avatar{Name: "third"})

	all := s.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, []string{all[0].Name, all[1].Name, all[2].Name}, []string{"third", "second", "first"})
}

func TestMemoryOrderingByCreatedAtDesc(t *testing.T) {
	t1 := now.Add(-3 * time.Hour)
	t2 := now.Add(-2 * time.Hour)
	t3 := now.Add(-1 * time.Hour)

	// Insert out of order on purpose.
	s := store.NewMemoryStore(nil, store.Options{})
	s.Create(model.Memory{Question: "q2", CreatedAt: t2})
	s.Create(model.Memory{Question: "q3", CreatedAt: t3})
	s.Create(model.Memory{Question: "q1", CreatedAt: t1})

	all := s.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, t3, all[0].CreatedAt)
	assert.Equal(t, t2, all[1].CreatedAt)
	assert.Equal(t, t1, all[2].CreatedAt)
}

func TestSortReflectsOutOfBandEdits(t *testing.T) {
	s := store.NewMemoryStore(nil, store.Options{})
	old := s.Create(model.Memory{Question: "old", CreatedAt: now.Add(-time.Hour)})
	s.Create(model.Memory{Question: "new", CreatedAt: now})

	future := now.Add(time.Hour)
	_, err := s.Update(old.ID, func(m *model.Memory) {
		model.MemoryPatch{CreatedAt: &future}.Apply(m)
	})
	require.NoError(t, err)

	all := s.GetAll()
	assert.Equal(t, "old", all[0].Question, "sorting is recomputed on every listing")
}

func TestSnapshotsAreDefensiveCopies(t *testing.T) {
	s := store.NewAvatarStore(nil, store.Options{})
	created := s.Create(model.Avatar{Name: "a", Photos: []string{"p1"}})

	// Mutating a returned snapshot must not leak into the store.
	created.Photos[0] = "tampered"
	snap, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", snap.Photos[0])

	all := s.GetAll()
	all[0].Name = "tampered"
	snap, err = s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", snap.Name)
}

func TestFamilyMemberInviteDefaults(t *testing.T) {
	s := store.NewFamilyMemberStore(nil, store.Options{Clock: fixedClock(now)})

	created := s.Create(model.FamilyMember{Email: "kin@example.com", Role: model.RoleContributor, AvatarID: 1})

	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, now, created.InvitedAt)
	assert.Equal(t, model.RolePermissions(model.RoleContributor), created.Permissions)
}

func TestFamilyMemberExplicitPermissionsKept(t *testing.T) {
	s := store.NewFamilyMemberStore(nil, store.Options{})

	custom := []model.Permission{model.PermViewMemories}
	created := s.Create(model.FamilyMember{Email: "kin@example.com", Role: model.RoleAdmin, AvatarID: 1, Permissions: custom})

	assert.Equal(t, custom, created.Permissions, "explicit permissions are stored as-is, even when they diverge from the role")
}

func TestFamilyMemberOrderingByInvitedAtDesc(t *testing.T) {
	s := store.NewFamilyMemberStore(nil, store.Options{})
	s.Create(model.FamilyMember{Email: "a@example.com", InvitedAt: now.Add(-time.Hour)})
	s.Create(model.FamilyMember{Email: "b@example.com", InvitedAt: now})

	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "b@example.com", all[0].Email)
}

func TestInteractionOrderingByTimestampDesc(t *testing.T) {
	s := store.NewInteractionStore(nil, store.Options{})
	s.Create(model.Interaction{Message: "old", Timestamp: now.Add(-time.Hour)})
	s.Create(model.Interaction{Message: "new", Timestamp: now})

	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].Message)
}
