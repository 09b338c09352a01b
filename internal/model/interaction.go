package model

import "time"

// PlaceholderUserID is recorded on interactions until real accounts
// exist. Authentication is out of scope for this service.
const PlaceholderUserID = "current-user"

// Interaction is one persisted chat turn: the user's message and the
// response generated for it.
type Interaction struct {
	ID        int       `json:"id"`
	AvatarID  int       `json:"avatarId"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// InteractionPatch is a partial Interaction for shallow-merge updates.
type InteractionPatch struct {
	AvatarID  *int       `json:"avatarId"`
	UserID    *string    `json:"userId"`
	Message   *string    `json:"message"`
	Response  *string    `json:"response"`
	Timestamp *time.Time `json:"timestamp"`
}

func (p InteractionPatch) Apply(i *Interaction) {
	if p.AvatarID != nil {
		i.AvatarID = *p.AvatarID
	}
	if p.UserID != nil {
		i.UserID = *p.UserID
	}
	if p.Message != nil {
		i.Message = *p.Message
	}
	if p.Response != nil {
		i.Response = *p.Response
	}
	if p.Timestamp != nil {
		i.Timestamp = *p.Timestamp
	}
}

func (i Interaction) Clone() Interaction { return i }
