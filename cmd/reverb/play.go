//go:build !headless

package main

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

// play blocks until the monitor has been drained through the default
// output device.
func play(m *monitor, sampleRate int, log logrus.FieldLogger) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio output: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(m)
	defer player.Close()

	log.WithFields(logrus.Fields{
		"function": "play",
		"seconds":  m.Seconds(sampleRate),
	}).Info("Playing")

	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}

	return player.Err()
}
