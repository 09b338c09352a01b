// Package seed holds the fixed startup datasets. Each store's identity
// counter starts one past the highest id present here.
package seed

import (
	"time"

	"github.com/everkeep/legacy-backend/internal/model"
)

func intp(v int) *int { return &v }

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Avatars returns the seed avatar profiles.
func Avatars() []model.Avatar {
	return []model.Avatar{
		{
			ID:           1,
			Name:         "Margaret Chen",
			Photos:       []string{"https://images.everkeep.app/avatars/margaret-1.jpg"},
			VoiceSamples: []string{"https://media.everkeep.app/voice/margaret-greeting.mp3"},
			Personality: model.Personality{
				Hobbies:        "Gardening, watercolor painting, Sunday crosswords",
				Values:         "Kindness first, always. Family dinners are sacred.",
				LifeHighlights: "Raised three children while running the family bakery for 40 years.",
				FamilyInfo:     "Married to David for 52 years, grandmother of seven.",
			},
			CompletionPercentage: 85,
			HomeLevel:            3,
			MemoryCount:          12,
			CreatedAt:            at(2024, time.January, 15, 10, 30),
		},
		{
			ID:           2,
			Name:         "Robert Okafor",
			Photos:       []string{"https://images.everkeep.app/avatars/robert-1.jpg"},
			VoiceSamples: []string{"https://media.everkeep.app/voice/robert-story.mp3"},
			Personality: model.Personality{
				Hobbies:        "Fishing, woodworking, old jazz records",
				Values:         "A man's word is his bond. Teach by doing.",
				LifeHighlights: "Thirty years as a high school teacher, coached the debate team to two state titles.",
				FamilyInfo:     "Father of two, uncle to many more.",
			},
			CompletionPercentage: 60,
			HomeLevel:            2,
			MemoryCount:          7,
			CreatedAt:            at(2024, time.February, 3, 14, 0),
		},
		{
			ID:   3,
			Name: "Elena Vasquez",
			Personality: model.Personality{
				Hobbies: "Cooking, salsa dancing, letters to old friends",
				Values:  "Laughter heals. Feed everyone who walks through the door.",
			},
			CompletionPercentage: 25,
			HomeLevel:            1,
			MemoryCount:          0,
			CreatedAt:            at(2024, time.March, 20, 9, 15),
		},
	}
}

// Memories returns the seed Q&A entries. The first two are attributed
// to avatars; the rest were recorded through the prompt flow, which
// never sets avatarId.
func Memories() []model.Memory {
	return []model.Memory{
		{
			ID:        1,
			AvatarID:  intp(1),
			Question:  "Share a moment when you felt the deepest love for your family. What made that moment so special?",
			Answer:    "The night the bakery flooded and all five of us bailed water until dawn, laughing the whole time. We lost the bread but I never felt richer.",
			Category:  model.CategoryFamily,
			CreatedAt: at(2024, time.January, 20, 11, 0),
		},
		{
			ID:        2,
			AvatarID:  intp(1),
			Question:  "If you could sit down with each person you love and share one piece of wisdom from your heart, what would it be?",
			Answer:    "Don't keep score. Not with money, not with favors, not with hurt. The ledger only ever weighs you down.",
			Category:  model.CategoryWisdom,
			CreatedAt: at(2024, time.January, 22, 16, 45),
		},
		{
			ID:        3,
			Question:  "What's the most important thing you want your loved ones to know about living a meaningful life?",
			Answer:    "Show up. Most of love is just showing up, again and again, especially when it's inconvenient.",
			Category:  model.CategoryLife,
			CreatedAt: at(2024, time.February, 10, 19, 30),
		},
		{
			ID:        4,
			Question:  "What do you want your children and grandchildren to remember about finding joy and hope, even in difficult times?",
			Answer:    "Audio recording (142 seconds)",
			MediaURL:  "https://media.everkeep.app/memories/joy-and-hope.mp3",
			Category:  model.CategoryAdvice,
			CreatedAt: at(2024, time.February, 14, 8, 20),
		},
		{
			ID:        5,
			Question:  "What story from your life do you most want to pass down through generations?",
			Answer:    "How your great-grandfather carried a single tomato seed across the ocean in his coat lining, and how that vine still grows behind the old house.",
			Category:  model.CategoryLegacy,
			CreatedAt: at(2024, time.March, 1, 13, 10),
		},
	}
}

// Interactions returns the seed chat turns.
func Interactions() []model.Interaction {
	return []model.Interaction{
		{
			ID:        1,
			AvatarID:  1,
			UserID:    model.PlaceholderUserID,
			Message:   "I miss you so much, Grandma.",
			Response:  "Oh my dear, family is everything to me. You know, every moment we spent together, every laugh, every hug - those are the treasures of my heart. I want you to know how deeply loved you are, always. This brings back such a precious memory I shared... You can always find me in those stories when you need me most.",
			Timestamp: at(2024, time.February, 1, 20, 5),
		},
		{
			ID:        2,
			AvatarID:  1,
			UserID:    model.PlaceholderUserID,
			Message:   "What should I do about the new job offer?",
			Response:  "Sweetheart, let me share something with you from my heart. Life teaches us that kindness is never wasted, that patience is a gift to yourself as much as others. Remember, you have everything you need inside you. Trust yourself, but also know I'm here whenever you need my voice. This brings back such a precious memory I shared... You can always find me in those stories when you need me most.",
			Timestamp: at(2024, time.February, 5, 12, 40),
		},
		{
			ID:        3,
			AvatarID:  2,
			UserID:    model.PlaceholderUserID,
			Message:   "Hello",
			Response:  "I'm so grateful we can share this moment together. You mean the world to me, and I hope you can feel the warmth of my love reaching out to you right now. ",
			Timestamp: at(2024, time.March, 2, 17, 25),
		},
	}
}

// FamilyMembers returns the seed invitations.
func FamilyMembers() []model.FamilyMember {
	return []model.FamilyMember{
		{
			ID:          1,
			Email:       "sarah.chen@gmail.com",
			Role:        model.RoleAdmin,
			AvatarID:    1,
			Permissions: model.RolePermissions(model.RoleAdmin),
			Status:      model.StatusActive,
			InvitedAt:   at(2024, time.January, 18, 9, 0),
		},
		{
			ID:          2,
			Email:       "mike.chen@outlook.com",
			Role:        model.RoleContributor,
			AvatarID:    1,
			Permissions: model.RolePermissions(model.RoleContributor),
			Status:      model.StatusActive,
			InvitedAt:   at(2024, time.January, 25, 15, 30),
		},
		{
			ID:          3,
			Email:       "ada.okafor@yahoo.com",
			Role:        model.RoleViewer,
			AvatarID:    2,
			Permissions: model.RolePermissions(model.RoleViewer),
			Status:      model.StatusPending,
			InvitedAt:   at(2024, time.February, 8, 11, 45),
		},
	}
}
