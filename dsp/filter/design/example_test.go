package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/filter/design"
)

func ExampleLowpassBW() {
	c := design.LowpassBW(1000, 1.9, 48000)

	fmt.Printf("100 Hz:   %.1f dB\n", c.MagnitudeDB(100, 48000))
	fmt.Printf("1000 Hz:  %.1f dB\n", c.MagnitudeDB(1000, 48000))
	// Output:
	// 100 Hz:   -0.0 dB
	// 1000 Hz:  -3.0 dB
}
