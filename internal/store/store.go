// Package store implements the in-memory entity collections backing the
// service. Each collection owns one homogeneous record slice, assigns
// integer identities from a private monotonic counter, and hands out
// defensive copies so callers can never reach store-held state.
package store

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

// Record constrains collection element types to those that can deep-copy
// themselves. Snapshots returned by the collection are always clones.
type Record[T any] interface {
	Clone() T
}

// Config describes one entity kind.
type Config[T Record[T]] struct {
	// Kind names the entity in errors ("avatar", "memory", ...).
	Kind string

	// ID gives the collection access to the record's identity field.
	ID func(*T) *int

	// Defaults fills fields the caller omitted at create time. The
	// supplied time is the collection clock's now.
	Defaults func(*T, time.Time)

	// Less orders GetAll results. Nil keeps insertion order, which is
	// newest-first because Create prepends.
	Less func(a, b T) bool

	// Clock defaults to time.Now. Tests pin it.
	Clock func() time.Time

	// Latency defaults to NoLatency.
	Latency Latency
}

// Collection is an in-memory entity store. It is the sole mutator of
// its backing slice and is safe for concurrent use.
type Collection[T Record[T]] struct {
	cfg Config[T]

	mu      sync.Mutex
	records []T
	nextID  int
}

// New builds a collection seeded with the given records. The identity
// counter starts one past the highest seeded identity.
func New[T Record[T]](cfg Config[T], seed []T) *Collection[T] {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Latency == nil {
		cfg.Latency = NoLatency{}
	}
	c := &Collection[T]{cfg: cfg, nextID: 1}
	for _, r := range seed {
		rec := r.Clone()
		if id := *cfg.ID(&rec); id >= c.nextID {
			c.nextID = id + 1
		}
		c.records = append(c.records, rec)
	}
	return c
}

// Kind returns the entity kind name.
func (c *Collection[T]) Kind() string { return c.cfg.Kind }

// Count returns the current number of records.
func (c *Collection[T]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// GetAll returns a snapshot of every record in the kind's canonical
// order. The sort runs on every call so out-of-band field edits via
// Update are always reflected.
func (c *Collection[T]) GetAll() []T {
	c.cfg.Latency.Wait(OpGetAll)

	c.mu.Lock()
	out := make([]T, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	c.mu.Unlock()

	if c.cfg.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return c.cfg.Less(out[i], out[j]) })
	}
	return out
}

// GetByID returns a snapshot of the record with the given identity.
func (c *Collection[T]) GetByID(id int) (T, error) {
	c.cfg.Latency.Wait(OpGetByID)

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if *c.cfg.ID(&c.records[i]) == id {
			return c.records[i].Clone(), nil
		}
	}
	var zero T
	return zero, notFound(c.cfg.Kind, id)
}

// CoerceID converts an identity from its external string form. Anything
// non-numeric is reported as NotFound, never as a type error.
func (c *Collection[T]) CoerceID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, notFound(c.cfg.Kind, raw)
	}
	return id, nil
}

// Create assigns the next identity, merges kind defaults over omitted
// fields, inserts at the front of the collection and returns a snapshot
// of the stored record. Caller-supplied identities are ignored.
func (c *Collection[T]) Create(payload T) T {
	c.cfg.Latency.Wait(OpCreate)

	rec := payload.Clone()
	if c.cfg.Defaults != nil {
		c.cfg.Defaults(&rec, c.cfg.Clock())
	}

	c.mu.Lock()
	*c.cfg.ID(&rec) = c.nextID
	c.nextID++
	c.records = append([]T{rec}, c.records...)
	c.mu.Unlock()

	return rec.Clone()
}

// Update applies the given mutation to the record with the given
// identity and returns the updated snapshot. The identity itself is
// restored afterwards so a patch can never change it.
func (c *Collection[T]) Update(id int, apply func(*T)) (T, error) {
	c.cfg.Latency.Wait(OpUpdate)

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if *c.cfg.ID(&c.records[i]) != id {
			continue
		}
		rec := c.records[i].Clone()
		apply(&rec)
		*c.cfg.ID(&rec) = id
		c.records[i] = rec
		return rec.Clone(), nil
	}
	var zero T
	return zero, notFound(c.cfg.Kind, id)
}

// Delete removes the record with the given identity. Removal is
// immediate; there is no tombstone.
func (c *Collection[T]) Delete(id int) error {
	c.cfg.Latency.Wait(OpDelete)

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if *c.cfg.ID(&c.records[i]) == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return nil
		}
	}
	return notFound(c.cfg.Kind, id)
}
