// Package buffer provides fixed-capacity sample storage for real-time
// processors that must never allocate after construction.
//
// An [Arena] owns one contiguous float64 block. Processors carve [Span]
// regions from it while they are being built; each Span has a fixed capacity
// and a logical length that can change at configuration time without
// touching the allocator.
//
// Building with the reverbdebug tag enables bounds checks of every Span
// access against the logical length. Release builds skip those checks.
package buffer
