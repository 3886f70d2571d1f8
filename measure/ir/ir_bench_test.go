package ir

import "testing"

func BenchmarkAnalyze(b *testing.B) {
	h := decay(1, 3)
	a := NewAnalyzer(48000)

	for b.Loop() {
		if _, err := a.Analyze(h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMagnitudeResponse(b *testing.B) {
	h := decay(0.2, 0.1)

	for b.Loop() {
		if _, err := MagnitudeResponse(h, 8192); err != nil {
			b.Fatal(err)
		}
	}
}
