package model

import "time"

// Category classifies a memory. Unknown categories are accepted and kept
// as-is; clients fall back to a default presentation for them.
type Category string

const (
	CategoryLife        Category = "life"
	CategoryFamily      Category = "family"
	CategoryWisdom      Category = "wisdom"
	CategoryValues      Category = "values"
	CategoryExperiences Category = "experiences"
	CategoryAdvice      Category = "advice"
	CategoryLove        Category = "love"
	CategoryLegacy      Category = "legacy"
)

// Categories lists the known memory categories in display order.
var Categories = []Category{
	CategoryLife, CategoryFamily, CategoryWisdom, CategoryValues,
	CategoryExperiences, CategoryAdvice, CategoryLove, CategoryLegacy,
}

// Known reports whether c is one of the fixed categories.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Memory is one recorded Q&A entry attributed to an avatar.
//
// AvatarID is nullable on purpose: the recording flow never sets it, so
// existing data contains unattributed memories. Callers that care about
// attribution must filter on it explicitly rather than assume it is set.
type Memory struct {
	ID        int       `json:"id"`
	AvatarID  *int      `json:"avatarId,omitempty"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	MediaURL  string    `json:"mediaUrl,omitempty"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemoryPatch is a partial Memory for shallow-merge updates.
type MemoryPatch struct {
	AvatarID  *int       `json:"avatarId"`
	Question  *string    `json:"question"`
	Answer    *string    `json:"answer"`
	MediaURL  *string    `json:"mediaUrl"`
	Category  *Category  `json:"category"`
	CreatedAt *time.Time `json:"createdAt"`
}

func (p MemoryPatch) Apply(m *Memory) {
	if p.AvatarID != nil {
		id := *p.AvatarID
		m.AvatarID = &id
	}
	if p.Question != nil {
		m.Question = *p.Question
	}
	if p.Answer != nil {
		m.Answer = *p.Answer
	}
	if p.MediaURL != nil {
		m.MediaURL = *p.MediaURL
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.CreatedAt != nil {
		m.CreatedAt = *p.CreatedAt
	}
}

func (m Memory) Clone() Memory {
	out := m
	if m.AvatarID != nil {
		id := *m.AvatarID
		out.AvatarID = &id
	}
	return out
}
