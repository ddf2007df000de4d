package domain

import "sync/atomic"

// Sequence allocates globally unique, strictly increasing message ids.
// It is injected into the storage layer instead of living as package state,
// so immediate, deferred and standup sends all draw from the same counter.
type Sequence struct {
	last atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() MsgId {
	return s.last.Add(1)
}

// Reset rewinds the counter. Only the workspace clear path may call this.
func (s *Sequence) Reset() {
	s.last.Store(0)
}
