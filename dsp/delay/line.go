package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/interp"
)

// Line is a circular delay line over fixed-capacity storage.
//
// The logical size may change at configuration time but never exceeds the
// capacity of the backing span; the write cursor wraps modulo size.
type Line struct {
	buf  buffer.Span
	pos  int
	size int
}

// New returns a delay line with its own storage of the given capacity.
// The logical size starts at capacity.
func New(capacity int) (*Line, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("delay capacity must be > 0: %d", capacity)
	}
	l := FromSpan(buffer.NewSpan(capacity))
	return &l, nil
}

// FromSpan wraps storage carved from an arena. The span's capacity becomes
// the line's capacity.
func FromSpan(s buffer.Span) Line {
	s.SetLen(s.Cap())
	return Line{buf: s, size: max(s.Cap(), 1)}
}

// Cap returns the fixed capacity.
func (d *Line) Cap() int {
	return d.buf.Cap()
}

// Size returns the logical length.
func (d *Line) Size() int {
	return d.size
}

// SetSize changes the logical length, clamped to [1, Cap()]. It reports
// whether the request had to be clamped. Contents are kept; the cursor is
// rewound if it falls outside the new length.
func (d *Line) SetSize(n int) bool {
	clamped := false
	if n < 1 {
		n = 1
		clamped = true
	}
	if n > d.buf.Cap() {
		n = d.buf.Cap()
		clamped = true
	}
	d.size = n
	d.buf.SetLen(n)
	if d.pos >= n {
		d.pos = 0
	}
	return clamped
}

// Write stores one sample at the cursor and advances it.
func (d *Line) Write(sample float64) {
	d.buf.Set(d.pos, sample)
	d.pos++
	if d.pos >= d.size {
		d.pos = 0
	}
}

// Step returns the sample written Size() writes ago and replaces it with
// sample. This is a pure delay of Size() samples.
func (d *Line) Step(sample float64) float64 {
	out := d.buf.At(d.pos)
	d.buf.Set(d.pos, sample)
	d.pos++
	if d.pos >= d.size {
		d.pos = 0
	}
	return out
}

// Tap returns the sample offset steps behind the most recent write,
// 0 ≤ offset < Size(). Tap(0) is the newest sample, Tap(Size()-1) the oldest.
func (d *Line) Tap(offset int) float64 {
	idx := d.pos - 1 - offset
	if idx < 0 {
		idx += d.size
	}
	return d.buf.At(idx)
}

// Oldest returns the sample the next Write or Step will overwrite.
func (d *Line) Oldest() float64 {
	return d.buf.At(d.pos)
}

// ReadFractional reads a fractional tap offset with cubic Hermite
// interpolation. The offset is clamped to [0, Size()-3].
func (d *Line) ReadFractional(offset float64) float64 {
	maxOffset := float64(d.size - 3)
	if maxOffset < 0 {
		return d.Tap(0)
	}
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}

	p := int(math.Floor(offset))
	t := offset - float64(p)

	xm1 := d.Tap(max(0, p-1))
	x0 := d.Tap(p)
	x1 := d.Tap(p + 1)
	x2 := d.Tap(p + 2)
	return interp.Hermite4(t, xm1, x0, x1, x2)
}

// Reset clears the full capacity and rewinds the cursor.
func (d *Line) Reset() {
	d.buf.Zero()
	d.pos = 0
}
