// Package host adapts a reverb.Engine to a frame-based audio host that
// exchanges interleaved float32 frames and configures effects with a flat
// control vector.
//
// The control vector is:
//
//	env[0] == -2          effect off, frames pass through
//	env[0] == -1          built-in preset env[1] at the host rate
//	otherwise             17 advanced values, see reverb.Params.Environment
package host
