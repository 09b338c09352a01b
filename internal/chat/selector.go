// Package chat implements the simulated conversation core: a rule-table
// response selector and the orchestrator that sequences a chat turn.
package chat

import (
	"strings"

	"github.com/everkeep/legacy-backend/internal/model"
)

// Rule binds a keyword category to its canned response. Rules are
// content, not logic: the selector walks the table top to bottom and
// the first rule with any matching token wins, so the slice order IS
// the priority order.
type Rule struct {
	Category string
	Keywords []string
	Template string
}

// Rules is the response table, highest priority first.
var Rules = []Rule{
	{
		Category: "family",
		Keywords: []string{"family", "parents", "children", "kids", "love", "miss", "remember"},
		Template: "Oh my dear, family is everything to me. You know, every moment we spent together, every laugh, every hug - those are the treasures of my heart. I want you to know how deeply loved you are, always. ",
	},
	{
		Category: "guidance",
		Keywords: []string{"advice", "wisdom", "help", "guidance", "what", "should", "how"},
		Template: "Sweetheart, let me share something with you from my heart. Life teaches us that kindness is never wasted, that patience is a gift to yourself as much as others. Remember, you have everything you need inside you. Trust yourself, but also know I'm here whenever you need my voice. ",
	},
	{
		Category: "comfort",
		Keywords: []string{"sad", "hurt", "lonely", "afraid", "worried", "scared"},
		Template: "Oh my precious one, I can hear the weight in your words. You know what I always told you - it's okay to feel what you're feeling. You're human, and you're allowed to have hard days. But remember, you are stronger than you know, and you are never, ever alone. I'm right here with you. ",
	},
	{
		Category: "celebration",
		Keywords: []string{"happy", "joy", "celebrate", "good", "excited", "proud"},
		Template: "My heart is just singing hearing this! You know how your happiness has always been my happiness? That hasn't changed one bit. I'm so proud of you, and I want you to celebrate every beautiful moment. Life is meant to be savored, my dear. ",
	},
	{
		Category: "hope",
		Keywords: []string{"future", "tomorrow", "hope", "dream", "plan"},
		Template: "Oh, the future holds such beautiful things for you! You know what I've learned? Hope isn't just a feeling - it's a choice we make every day. Keep dreaming, keep believing in yourself. The love and strength I see in you will carry you to wonderful places. ",
	},
}

// DefaultTemplate answers messages no rule matches.
const DefaultTemplate = "I'm so grateful we can share this moment together. You mean the world to me, and I hope you can feel the warmth of my love reaching out to you right now. "

// MemoryClosing is appended whenever the avatar has at least one
// recorded memory.
const MemoryClosing = "This brings back such a precious memory I shared... You can always find me in those stories when you need me most."

// FallbackResponse covers any internal failure; the selector never
// surfaces an error to its caller.
const FallbackResponse = "My dear one, I'm here with you, always listening with all the love in my heart."

// SelectResponse maps a free-text message and the avatar's memory set
// to a canned reply. Pure and deterministic: lowercase, split on
// whitespace, first matching rule wins, default template otherwise.
func SelectResponse(message string, memories []model.Memory) string {
	tokens := strings.Fields(strings.ToLower(message))
	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		present[t] = true
	}

	response := DefaultTemplate
	for _, rule := range Rules {
		if matchesAny(present, rule.Keywords) {
			response = rule.Template
			break
		}
	}

	if len(memories) > 0 {
		response += MemoryClosing
	}
	return response
}

func matchesAny(present map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if present[kw] {
			return true
		}
	}
	return false
}
