package order

import (
	"fmt"
	"sync/atomic"
	"time"
)

// CodeGenerator allocates order codes. Codes are the public identity of an
// order and always match ORD-\d{6}.
type CodeGenerator interface {
	Next() string
}

// Sequence is the production generator. The original scheme took the last six
// digits of the wall clock in milliseconds, which can hand two rapid-fire
// finalizations the same code; the sequence keeps that scheme's surface
// (seeded from the clock, six digits) but increments monotonically so codes
// never repeat within a process. Cross-process uniqueness belongs to the
// tracking system that receives the finalized order.
type Sequence struct {
	counter atomic.Uint64
}

// NewSequence creates a sequence seeded from the current epoch milliseconds.
func NewSequence() *Sequence {
	s := &Sequence{}
	s.counter.Store(uint64(time.Now().UnixMilli()))
	return s
}

// NewSequenceFrom creates a sequence with a fixed seed. Used by tests.
func NewSequenceFrom(seed uint64) *Sequence {
	s := &Sequence{}
	s.counter.Store(seed)
	return s
}

// Next returns the next order code.
func (s *Sequence) Next() string {
	n := s.counter.Add(1)
	return fmt.Sprintf("ORD-%06d", n%1_000_000)
}
