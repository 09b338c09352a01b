package model

import "time"

// Role scopes what an invited family member may do.
type Role string

const (
	RoleViewer      Role = "viewer"
	RoleContributor Role = "contributor"
	RoleAdmin       Role = "admin"
)

// Permission is a single capability tag granted to a family member.
type Permission string

const (
	PermViewMemories   Permission = "view_memories"
	PermChatWithAvatar Permission = "chat_with_avatar"
	PermAddMemories    Permission = "add_memories"
	PermManageMembers  Permission = "manage_members"
)

// RolePermissions returns the capability set a role grants. Each role
// includes everything the one below it grants. Unknown roles get the
// viewer set.
func RolePermissions(r Role) []Permission {
	switch r {
	case RoleAdmin:
		return []Permission{PermViewMemories, PermChatWithAvatar, PermAddMemories, PermManageMembers}
	case RoleContributor:
		return []Permission{PermViewMemories, PermChatWithAvatar, PermAddMemories}
	default:
		return []Permission{PermViewMemories, PermChatWithAvatar}
	}
}

// MemberStatus tracks an invitation through its lifecycle.
type MemberStatus string

const (
	StatusPending MemberStatus = "pending"
	StatusActive  MemberStatus = "active"
)

// FamilyMember is an invited party with role-scoped access to an
// avatar's content. Permissions start out derived from the role but may
// be edited independently afterwards; the service stores whatever the
// caller last set and never reconciles the two.
type FamilyMember struct {
	ID          int          `json:"id"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	AvatarID    int          `json:"avatarId"`
	Permissions []Permission `json:"permissions"`
	Status      MemberStatus `json:"status"`
	InvitedAt   time.Time    `json:"invitedAt"`
}

// FamilyMemberPatch is a partial FamilyMember for shallow-merge updates.
type FamilyMemberPatch struct {
	Email       *string       `json:"email"`
	Role        *Role         `json:"role"`
	AvatarID    *int          `json:"avatarId"`
	Permissions *[]Permission `json:"permissions"`
	Status      *MemberStatus `json:"status"`
	InvitedAt   *time.Time    `json:"invitedAt"`
}

func (p FamilyMemberPatch) Apply(m *FamilyMember) {
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.AvatarID != nil {
		m.AvatarID = *p.AvatarID
	}
	if p.Permissions != nil {
		m.Permissions = append([]Permission(nil), *p.Permissions...)
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.InvitedAt != nil {
		m.InvitedAt = *p.InvitedAt
	}
}

func (m FamilyMember) Clone() FamilyMember {
	out := m
	out.Permissions = append([]Permission(nil), m.Permissions...)
	return out
}
