// Package ir measures reverberation impulse responses.
//
// An [Analyzer] reduces an impulse response to the usual room-acoustic
// figures (ISO 3382): reverberation time from the Schroeder energy decay
// curve (EDT, T20, T30), clarity C50/C80, definition D50 and centre time.
// [Analyzer.DecayAt] reads the decay curve at a point in time, which is what
// tail and drain checks need. [MagnitudeResponse] gives the FFT magnitude
// of a response for flatness and colouration checks.
//
//	a := ir.NewAnalyzer(48000)
//	m, err := a.Analyze(response)
//	fmt.Printf("RT60 %.2f s  C80 %.1f dB\n", m.RT60, m.C80)
package ir
