package memories

import (
	"math/rand"

	"github.com/everkeep/legacy-backend/internal/model"
)

// Prompt is one guided question from the recording flow.
type Prompt struct {
	Category model.Category `json:"category"`
	Question string         `json:"question"`
}

// Prompts is the fixed question bank, one question per category.
var Prompts = []Prompt{
	{
		Category: model.CategoryLife,
		Question: "What's the most important thing you want your loved ones to know about living a meaningful life?",
	},
	{
		Category: model.CategoryFamily,
		Question: "Share a moment when you felt the deepest love for your family. What made that moment so special?",
	},
	{
		Category: model.CategoryWisdom,
		Question: "If you could sit down with each person you love and share one piece of wisdom from your heart, what would it be?",
	},
	{
		Category: model.CategoryValues,
		Question: "What values have guided your heart throughout your life, and how do you hope they'll live on in others?",
	},
	{
		Category: model.CategoryExperiences,
		Question: "Tell me about a time when you felt truly proud of who you are. What made that moment so meaningful?",
	},
	{
		Category: model.CategoryAdvice,
		Question: "What do you want your children and grandchildren to remember about finding joy and hope, even in difficult times?",
	},
	{
		Category: model.CategoryLove,
		Question: "How do you want to be remembered? What feeling do you hope lives on in the hearts of those you love?",
	},
	{
		Category: model.CategoryLegacy,
		Question: "What story from your life do you most want to pass down through generations?",
	},
}

// nextPrompt picks a random question not yet answered by any stored
// memory. ok is false once every question has an answer.
func nextPrompt(answered []model.Memory, pick func(n int) int) (Prompt, bool) {
	if pick == nil {
		pick = rand.Intn
	}
	taken := make(map[string]bool, len(answered))
	for _, m := range answered {
		taken[m.Question] = true
	}

	var open []Prompt
	for _, p := range Prompts {
		if !taken[p.Question] {
			open = append(open, p)
		}
	}
	if len(open) == 0 {
		return Prompt{}, false
	}
	return open[pick(len(open))], true
}
