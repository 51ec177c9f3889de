package sequence

import "sync/atomic"

// Sequencer hands out strictly increasing uint64s with no gaps. It
// backs both order id allocation (ids are dense from 1) and the
// journal op sequence.
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer that will issue start+1 next.
// Fresh boot: start = 0. After replay: start = last replayed value.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next returns the next value in the sequence.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued value, 0 if none.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Reset rewinds or advances the sequence. Only used when restoring
// from snapshot and journal replay, before any traffic is accepted.
func (s *Sequencer) Reset(v uint64) {
	s.last.Store(v)
}
