package factory

import "sync"

// Sequence is the shared alternation state behind the alternating product.
// Successive Next calls return 0, 1, 0, 1, ... across every holder of the
// same Sequence, so alternation spans creators and instances alike.
//
// The original design hid this as a process-wide counter; keeping it as an
// explicit value makes the position observable and resettable in tests.
// Increment-and-read is guarded so concurrent construction preserves the
// alternation invariant.
type Sequence struct {
	mu sync.Mutex
	n  int
}

// NewSequence returns a Sequence positioned before its first element.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the current position and advances. Positions alternate
// between 0 and 1.
func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := s.n % 2
	s.n++
	return pos
}

// Pos returns the position the next call to Next will yield, without
// advancing.
func (s *Sequence) Pos() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n % 2
}

// Reset rewinds the sequence to its starting position.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
}
