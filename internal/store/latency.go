package store

import "time"

// Op names a store operation for latency profiling.
type Op string

const (
	OpGetAll  Op = "getAll"
	OpGetByID Op = "getById"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
)

// Latency emulates a network round-trip before each store operation.
// It is a scheduling concern only; no correctness depends on it.
type Latency interface {
	Wait(op Op)
}

// NoLatency completes every operation immediately. It is the default
// and what every test uses.
type NoLatency struct{}

func (NoLatency) Wait(Op) {}

// SimulatedLatency sleeps a fixed duration per operation, approximating
// the feel of a remote API during local development.
type SimulatedLatency struct {
	Profile map[Op]time.Duration
}

// DefaultSimulated mirrors the per-operation delays the product was
// originally tuned against.
func DefaultSimulated() SimulatedLatency {
	return SimulatedLatency{Profile: map[Op]time.Duration{
		OpGetAll:  250 * time.Millisecond,
		OpGetByID: 150 * time.Millisecond,
		OpCreate:  350 * time.Millisecond,
		OpUpdate:  250 * time.Millisecond,
		OpDelete:  200 * time.Millisecond,
	}}
}

func (s SimulatedLatency) Wait(op Op) {
	if d, ok := s.Profile[op]; ok && d > 0 {
		time.Sleep(d)
	}
}
