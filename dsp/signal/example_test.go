package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/signal"
)

func ExampleGenerator_NoiseBursts() {
	g := signal.NewGenerator([]core.StreamOption{core.WithSampleRate(1000)}, signal.WithSeed(7))

	// Two 10 ms bursts, 50 ms apart. The fade-in silences each burst's
	// first sample.
	x, err := g.NoiseBursts(0.5, 0.01, 0.05, 0.1)
	if err != nil {
		panic(err)
	}

	sounding := 0
	for _, v := range x {
		if v != 0 {
			sounding++
		}
	}

	fmt.Printf("%d of %d samples sounding\n", sounding, len(x))

	// Output:
	// 18 of 100 samples sounding
}

func ExampleNormalize() {
	wet := []float64{0.2, -1.6, 0.4, 0.8}

	x, err := signal.Normalize(wet, 0.5)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f %.4f %.4f %.4f\n", x[0], x[1], x[2], x[3])

	// Output:
	// 0.0625 -0.5000 0.1250 0.2500
}
