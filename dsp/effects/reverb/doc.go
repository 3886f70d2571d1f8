// Package reverb implements a real-time stereo algorithmic reverb in the
// Progenitor tradition: an early-reflection network followed by a
// cross-coupled late network of modulated all-pass diffusers, damping
// filters and long delays, optionally oversampled.
//
// An [Engine] is built once with [New], which reserves every delay buffer
// in a single arena sized for the worst case. [Engine.Configure] accepts a
// [Config]: [Bypass], a named [Preset], or explicit [Params]. Streaming with
// [Engine.Process] never allocates.
//
// Engines are not safe for concurrent use. Configure and Process must be
// serialised by the caller.
package reverb
