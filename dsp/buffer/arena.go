package buffer

import (
	"errors"
	"fmt"
)

// ErrArenaExhausted is returned when a Span request does not fit the arena.
var ErrArenaExhausted = errors.New("buffer: arena exhausted")

// Arena is a bump allocator over a single float64 slice.
type Arena struct {
	data []float64
	used int
}

// NewArena returns an arena with room for capacity samples.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{data: make([]float64, capacity)}
}

// Cap returns the total number of samples the arena holds.
func (a *Arena) Cap() int {
	return len(a.data)
}

// Used returns the number of samples already handed out.
func (a *Arena) Used() int {
	return a.used
}

// Span carves a zeroed region of capacity samples. The logical length starts
// at capacity.
func (a *Arena) Span(capacity int) (Span, error) {
	if capacity <= 0 {
		return Span{}, fmt.Errorf("buffer: span capacity must be > 0: %d", capacity)
	}

	if a.used+capacity > len(a.data) {
		return Span{}, fmt.Errorf("%w: need %d, have %d", ErrArenaExhausted, capacity, len(a.data)-a.used)
	}

	s := a.data[a.used : a.used+capacity : a.used+capacity]
	a.used += capacity

	return Span{data: s, n: capacity}, nil
}

// MustSpan is like Span but panics on failure. Use it only where capacities
// were summed up front.
func (a *Arena) MustSpan(capacity int) Span {
	s, err := a.Span(capacity)
	if err != nil {
		panic(err)
	}
	return s
}

// Zero clears every sample in the arena, including unused space.
func (a *Arena) Zero() {
	clear(a.data)
}
