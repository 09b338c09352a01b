package chat

import (
	"math/rand"
	"time"
)

// DelayProvider decides how long the avatar "thinks" before a reply is
// delivered. Injectable so tests swap in NoDelay.
type DelayProvider interface {
	ReplyDelay() time.Duration
}

// UniformDelay draws uniformly from [Min, Max).
type UniformDelay struct {
	Min time.Duration
	Max time.Duration
}

// DefaultTypingDelay matches the product's original 1.5–2.5 s window.
func DefaultTypingDelay() UniformDelay {
	return UniformDelay{Min: 1500 * time.Millisecond, Max: 2500 * time.Millisecond}
}

func (u UniformDelay) ReplyDelay() time.Duration {
	if u.Max <= u.Min {
		return u.Min
	}
	return u.Min + time.Duration(rand.Int63n(int64(u.Max-u.Min)))
}

// NoDelay delivers replies immediately.
type NoDelay struct{}

func (NoDelay) ReplyDelay() time.Duration { return 0 }
