package model

import "time"

// Personality holds the free-text profile sections collected by the
// avatar creation wizard.
type Personality struct {
	Hobbies        string `json:"hobbies"`
	Values         string `json:"values"`
	LifeHighlights string `json:"lifeHighlights"`
	FamilyInfo     string `json:"familyInfo"`
}

// Avatar is a user-authored profile representing a person whose legacy
// is preserved. Photos and voice samples are transient media references
// supplied by the client; nothing is stored server-side.
type Avatar struct {
	ID                   int         `json:"id"`
	Name                 string      `json:"name"`
	Photos               []string    `json:"photos"`
	VoiceSamples         []string    `json:"voiceSamples"`
	Personality          Personality `json:"personality"`
	CompletionPercentage int         `json:"completionPercentage"`
	HomeLevel            int         `json:"homeLevel"`
	MemoryCount          int         `json:"memoryCount"`
	CreatedAt            time.Time   `json:"createdAt"`
}

// AvatarPatch is a partial Avatar. Nil fields are left untouched by an
// update; set fields overwrite.
type AvatarPatch struct {
	Name                 *string      `json:"name"`
	Photos               *[]string    `json:"photos"`
	VoiceSamples         *[]string    `json:"voiceSamples"`
	Personality          *Personality `json:"personality"`
	CompletionPercentage *int         `json:"completionPercentage"`
	HomeLevel            *int         `json:"homeLevel"`
	MemoryCount          *int         `json:"memoryCount"`
	CreatedAt            *time.Time   `json:"createdAt"`
}

// Apply merges the patch over the avatar, field by field.
func (p AvatarPatch) Apply(a *Avatar) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Photos != nil {
		a.Photos = append([]string(nil), *p.Photos...)
	}
	if p.VoiceSamples != nil {
		a.VoiceSamples = append([]string(nil), *p.VoiceSamples...)
	}
	if p.Personality != nil {
		a.Personality = *p.Personality
	}
	if p.CompletionPercentage != nil {
		a.CompletionPercentage = *p.CompletionPercentage
	}
	if p.HomeLevel != nil {
		a.HomeLevel = *p.HomeLevel
	}
	if p.MemoryCount != nil {
		a.MemoryCount = *p.MemoryCount
	}
	if p.CreatedAt != nil {
		a.CreatedAt = *p.CreatedAt
	}
}

// Clone returns a deep copy so callers can never mutate store-held state
// through a returned snapshot.
func (a Avatar) Clone() Avatar {
	out := a
	out.Photos = append([]string(nil), a.Photos...)
	out.VoiceSamples = append([]string(nil), a.VoiceSamples...)
	return out
}
