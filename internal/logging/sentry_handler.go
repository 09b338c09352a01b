package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryHandler is an slog.Handler that batches ERROR+ records and
// forwards them to Sentry off the request path.
type SentryHandler struct {
	core  *sentryCore
	attrs []slog.Attr
	group string
}

// sentryCore is shared by every WithAttrs/WithGroup derivative so one
// Stop drains them all.
type sentryCore struct {
	hub    *sentry.Hub
	mu     sync.Mutex
	buffer []*sentry.Event
	ticker *time.Ticker
	done   chan struct{}
}

func NewSentryHandler(hub *sentry.Hub) *SentryHandler {
	core := &sentryCore{
		hub:    hub,
		buffer: make([]*sentry.Event, 0, 50),
		ticker: time.NewTicker(5 * time.Second),
		done:   make(chan struct{}),
	}
	go core.flushLoop()
	return &SentryHandler{core: core}
}

func (c *sentryCore) flushLoop() {
	for {
		select {
		case <-c.ticker.C:
			c.flush()
		case <-c.done:
			c.flush()
			return
		}
	}
}

func (c *sentryCore) flush() {
	c.mu.Lock()
	if len(c.buffer) == 0 {
		c.mu.Unlock()
		return
	}
	batch := c.buffer
	c.buffer = make([]*sentry.Event, 0, 50)
	c.mu.Unlock()

	for _, event := range batch {
		c.hub.CaptureEvent(event)
	}
}

func (h *SentryHandler) Stop() {
	h.core.ticker.Stop()
	close(h.core.done)
}

// Enabled only handles ERROR and above.
func (h *SentryHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *SentryHandler) Handle(_ context.Context, record slog.Record) error {
	event := sentry.NewEvent()
	event.Timestamp = record.Time
	event.Level = sentry.LevelError
	event.Message = record.Message
	event.Logger = "slog"

	extra := make(map[string]interface{}, record.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		extra[h.key(a.Key)] = a.Value.Any()
	}
	record.Attrs(func(a slog.Attr) bool {
		extra[h.key(a.Key)] = a.Value.Any()
		return true
	})
	event.Extra = extra

	h.core.mu.Lock()
	h.core.buffer = append(h.core.buffer, event)
	h.core.mu.Unlock()
	return nil
}

func (h *SentryHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SentryHandler{
		core:  h.core,
		attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...),
		group: h.group,
	}
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SentryHandler{core: h.core, attrs: h.attrs, group: group}
}
