//go:build headless

package main

import (
	"errors"

	"github.com/sirupsen/logrus"
)

func play(*monitor, int, logrus.FieldLogger) error {
	return errors.New("playback is not available in headless builds")
}
