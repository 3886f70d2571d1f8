package reverb

// DefaultMaxInternalRate is the highest internal rate (sample rate times
// oversampling factor) whose delay lengths fit the engine's storage
// without clamping.
const DefaultMaxInternalRate = 192000.0

type options struct {
	preserveTail    bool
	maxInternalRate float64
}

func defaultOptions() options {
	return options{maxInternalRate: DefaultMaxInternalRate}
}

// Option configures an Engine at construction.
type Option func(*options)

// WithPreservedTail keeps delay and filter state across Configure calls, so
// a running tail continues through a parameter change. By default every
// Configure starts from silence.
func WithPreservedTail() Option {
	return func(o *options) {
		o.preserveTail = true
	}
}

// WithMaxInternalRate sizes the storage for internal rates up to rate.
// Higher rates still work; their delays are clamped to the available
// capacity. Non-positive values are ignored.
func WithMaxInternalRate(rate float64) Option {
	return func(o *options) {
		if rate > 0 {
			o.maxInternalRate = rate
		}
	}
}
