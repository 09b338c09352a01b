package store

import (
	"time"

	"github.com/everkeep/legacy-backend/internal/model"
)

// Options carries the cross-cutting knobs shared by every collection.
type Options struct {
	Clock   func() time.Time
	Latency Latency
}

// Avatars keep insertion order: Create prepends, so the listing is
// newest-first without a sort key.
func NewAvatarStore(seed []model.Avatar, opts Options) *Collection[model.Avatar] {
	return New(Config[model.Avatar]{
		Kind: "avatar",
		ID:   func(a *model.Avatar) *int { return &a.ID },
		Defaults: func(a *model.Avatar, now time.Time) {
			if a.CreatedAt.IsZero() {
				a.CreatedAt = now
			}
		},
		Clock:   opts.Clock,
		Latency: opts.Latency,
	}, seed)
}

// Memories list newest-first by creation time.
func NewMemoryStore(seed []model.Memory, opts Options) *Collection[model.Memory] {
	return New(Config[model.Memory]{
		Kind: "memory",
		ID:   func(m *model.Memory) *int { return &m.ID },
		Defaults: func(m *model.Memory, now time.Time) {
			if m.CreatedAt.IsZero() {
				m.CreatedAt = now
			}
		},
		Less: func(a, b model.Memory) bool { return a.CreatedAt.After(b.CreatedAt) },

		Clock:   opts.Clock,
		Latency: opts.Latency,
	}, seed)
}

// Interactions list newest-first by turn timestamp.
func NewInteractionStore(seed []model.Interaction, opts Options) *Collection[model.Interaction] {
	return New(Config[model.Interaction]{
		Kind: "interaction",
		ID:   func(i *model.Interaction) *int { return &i.ID },
		Defaults: func(i *model.Interaction, now time.Time) {
			if i.Timestamp.IsZero() {
				i.Timestamp = now
			}
		},
		Less: func(a, b model.Interaction) bool { return a.Timestamp.After(b.Timestamp) },

		Clock:   opts.Clock,
		Latency: opts.Latency,
	}, seed)
}

// Family members list newest-first by invitation time. Invites default
// to pending with the permission set their role grants.
func NewFamilyMemberStore(seed []model.FamilyMember, opts Options) *Collection[model.FamilyMember] {
	return New(Config[model.FamilyMember]{
		Kind: "family member",
		ID:   func(m *model.FamilyMember) *int { return &m.ID },
		Defaults: func(m *model.FamilyMember, now time.Time) {
			if m.InvitedAt.IsZero() {
				m.InvitedAt = now
			}
			if m.Status == "" {
				m.Status = model.StatusPending
			}
			if m.Permissions == nil {
				m.Permissions = model.RolePermissions(m.Role)
			}
		},
		Less: func(a, b model.FamilyMember) bool { return a.InvitedAt.After(b.InvitedAt) },

		Clock:   opts.Clock,
		Latency: opts.Latency,
	}, seed)
}
