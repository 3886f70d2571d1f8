package buffer

import "fmt"

// Span is a fixed-capacity window with a logical length n ≤ Cap().
// The zero value is an empty span.
type Span struct {
	data []float64
	n    int
}

// NewSpan allocates a standalone span outside any arena. Intended for tests
// and small one-off processors.
func NewSpan(capacity int) Span {
	if capacity < 0 {
		capacity = 0
	}
	return Span{data: make([]float64, capacity), n: capacity}
}

// Len returns the logical length.
func (s *Span) Len() int {
	return s.n
}

// Cap returns the fixed capacity.
func (s *Span) Cap() int {
	return len(s.data)
}

// SetLen changes the logical length, clamped to [0, Cap()].
// It reports whether n had to be clamped.
func (s *Span) SetLen(n int) bool {
	clamped := false
	if n < 0 {
		n = 0
		clamped = true
	}
	if n > len(s.data) {
		n = len(s.data)
		clamped = true
	}
	s.n = n
	return clamped
}

// At returns sample i of the logical region.
func (s *Span) At(i int) float64 {
	if boundsChecks {
		s.check(i)
	}
	return s.data[i]
}

// Set stores v at index i of the logical region.
func (s *Span) Set(i int, v float64) {
	if boundsChecks {
		s.check(i)
	}
	s.data[i] = v
}

// Samples returns the logical region as a slice sharing storage.
func (s *Span) Samples() []float64 {
	return s.data[:s.n]
}

// Zero clears the whole capacity, not only the logical region.
func (s *Span) Zero() {
	clear(s.data)
}

func (s *Span) check(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("buffer: index %d out of logical range [0,%d) (cap %d)", i, s.n, len(s.data)))
	}
}
