package home

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

func serviceWith(t *testing.T, memoryCount int) *Service {
	t.Helper()
	memories := make([]model.Memory, 0, memoryCount)
	for i := 0; i < memoryCount; i++ {
		memories = append(memories, model.Memory{ID: i + 1, Question: fmt.Sprintf("q%d", i+1)})
	}
	return NewService(
		store.NewAvatarStore(nil, store.Options{}),
		store.NewMemoryStore(memories, store.Options{}),
		store.NewInteractionStore(nil, store.Options{}),
		store.NewFamilyMemberStore(nil, store.Options{}),
	)
}

func TestHomeLevel(t *testing.T) {
	cases := []struct {
		memories int
		level    int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{12, 3},
	}
	for _, tc := range cases {
		state := serviceWith(t, tc.memories).Home()
		assert.Equal(t, tc.level, state.HomeLevel, "%d memories", tc.memories)
		assert.Equal(t, tc.memories, state.MemoryCount)
	}
}

func TestRoomUnlocking(t *testing.T) {
	state := serviceWith(t, 15).Home()
	require.Len(t, state.Rooms, len(Rooms))

	unlocked := map[string]bool{}
	for _, r := range state.Rooms {
		unlocked[r.ID] = r.Unlocked
	}
	assert.True(t, unlocked["living_room"])
	assert.True(t, unlocked["garden"], "threshold is inclusive")
	assert.False(t, unlocked["gallery"])
	assert.False(t, unlocked["workshop"])
}

func TestMilestones(t *testing.T) {
	state := serviceWith(t, 5).Home()
	require.Len(t, state.Milestones, 4)

	byName := map[string]bool{}
	for _, m := range state.Milestones {
		byName[m.Name] = m.Earned
	}
	assert.True(t, byName["First Memory"])
	assert.True(t, byName["Storyteller"])
	assert.False(t, byName["Wisdom Keeper"])
	assert.False(t, byName["Legacy Builder"])
}

func TestDashboardAverageCompletion(t *testing.T) {
	avatars := store.NewAvatarStore([]model.Avatar{
		{ID: 1, Name: "a", CompletionPercentage: 40},
		{ID: 2, Name: "b", CompletionPercentage: 70},
	}, store.Options{})
	svc := NewService(
		avatars,
		store.NewMemoryStore(nil, store.Options{}),
		store.NewInteractionStore(nil, store.Options{}),
		store.NewFamilyMemberStore(nil, store.Options{}),
	)

	stats := svc.Dashboard()
	assert.Equal(t, 2, stats.TotalAvatars)
	assert.InDelta(t, 55.0, stats.AverageCompletion, 0.001)
}

func TestDashboardEmptyAvatars(t *testing.T) {
	stats := serviceWith(t, 0).Dashboard()
	assert.Zero(t, stats.AverageCompletion)
}
