package home

import (
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

// memoriesPerLevel is the growth rate of the digital home.
const memoriesPerLevel = 5

// Room is one unlockable space in the digital home.
type Room struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	UnlockRequirement int    `json:"unlockRequirement"`
}

// Rooms is the fixed room catalog, in unlock order.
var Rooms = []Room{
	{ID: "living_room", Name: "Living Room", Description: "A cozy space for family gatherings", UnlockRequirement: 5},
	{ID: "study", Name: "Study", Description: "Where wisdom and knowledge reside", UnlockRequirement: 10},
	{ID: "garden", Name: "Memory Garden", Description: "Beautiful memories bloom here", UnlockRequirement: 15},
	{ID: "gallery", Name: "Photo Gallery", Description: "Precious moments captured in time", UnlockRequirement: 20},
	{ID: "music_room", Name: "Music Room", Description: "Where melodies and memories harmonize", UnlockRequirement: 25},
	{ID: "workshop", Name: "Workshop", Description: "Creative projects and life skills", UnlockRequirement: 30},
}

// Milestone is an achievement earned by recording memories.
type Milestone struct {
	Name     string `json:"name"`
	Required int    `json:"required"`
	Earned   bool   `json:"earned"`
}

var milestoneDefs = []struct {
	name     string
	required int
}{
	{"First Memory", 1},
	{"Storyteller", 5},
	{"Wisdom Keeper", 10},
	{"Legacy Builder", 20},
}

// RoomState is a room plus its unlock progress.
type RoomState struct {
	Room
	Unlocked bool `json:"unlocked"`
}

// HomeState is the digital home progress snapshot.
type HomeState struct {
	MemoryCount int         `json:"memoryCount"`
	HomeLevel   int         `json:"homeLevel"`
	Rooms       []RoomState `json:"rooms"`
	Milestones  []Milestone `json:"milestones"`
}

// Stats is the dashboard aggregate.
type Stats struct {
	TotalAvatars      int     `json:"totalAvatars"`
	TotalMemories     int     `json:"totalMemories"`
	TotalInteractions int     `json:"totalInteractions"`
	FamilyMembers     int     `json:"familyMembers"`
	AverageCompletion float64 `json:"averageCompletion"`
}

// Service computes home progress and dashboard stats from the stores.
type Service struct {
	avatars      *store.Collection[model.Avatar]
	memories     *store.Collection[model.Memory]
	interactions *store.Collection[model.Interaction]
	family       *store.Collection[model.FamilyMember]
}

func NewService(
	avatars *store.Collection[model.Avatar],
	memories *store.Collection[model.Memory],
	interactions *store.Collection[model.Interaction],
	family *store.Collection[model.FamilyMember],
) *Service {
	return &Service{avatars: avatars, memories: memories, interactions: interactions, family: family}
}

// Home returns the digital home state. The level grows by one for
// every five recorded memories.
func (s *Service) Home() HomeState {
	count := s.memories.Count()

	state := HomeState{
		MemoryCount: count,
		HomeLevel:   count/memoriesPerLevel + 1,
	}
	for _, room := range Rooms {
		state.Rooms = append(state.Rooms, RoomState{Room: room, Unlocked: count >= room.UnlockRequirement})
	}
	for _, m := range milestoneDefs {
		state.Milestones = append(state.Milestones, Milestone{Name: m.name, Required: m.required, Earned: count >= m.required})
	}
	return state
}

// Dashboard returns the aggregate counters shown on the landing page.
func (s *Service) Dashboard() Stats {
	avatars := s.avatars.GetAll()

	stats := Stats{
		TotalAvatars:      len(avatars),
		TotalMemories:     s.memories.Count(),
		TotalInteractions: s.interactions.Count(),
		FamilyMembers:     s.family.Count(),
	}
	if len(avatars) > 0 {
		sum := 0
		for _, a := range avatars {
			sum += a.CompletionPercentage
		}
		stats.AverageCompletion = float64(sum) / float64(len(avatars))
	}
	return stats
}
