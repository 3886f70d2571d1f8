package audiofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

var (
	ErrUnsupportedFormat   = errors.New("audiofile: unsupported format")
	ErrInvalidFile         = errors.New("audiofile: invalid file")
	ErrUnsupportedBitDepth = errors.New("audiofile: unsupported bit depth")
	ErrEmptyClip           = errors.New("audiofile: clip has no channels")
)

// Format names a container.
type Format string

const (
	WAV    Format = "wav"
	AIFF   Format = "aiff"
	MP3    Format = "mp3"
	Vorbis Format = "ogg"
)

// FormatFromPath maps a file extension to its Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return WAV, nil
	case ".aif", ".aiff":
		return AIFF, nil
	case ".mp3":
		return MP3, nil
	case ".ogg", ".oga":
		return Vorbis, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Clip is decoded audio held in memory.
type Clip struct {
	SampleRate int
	Channels   int
	// Samples are interleaved by channel.
	Samples []float64
}

// Frames returns the number of sample frames.
func (c *Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}

	return len(c.Samples) / c.Channels
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}

	return float64(c.Frames()) / float64(c.SampleRate)
}

// Stereo returns the clip as stereo frames. A mono clip feeds both sides;
// with more than two channels only the first two are kept.
func (c *Clip) Stereo() ([]reverb.Sample, error) {
	if c.Channels <= 0 {
		return nil, ErrEmptyClip
	}

	out := make([]reverb.Sample, c.Frames())
	for i := range out {
		frame := c.Samples[i*c.Channels:]
		if c.Channels == 1 {
			out[i] = reverb.Sample{L: frame[0], R: frame[0]}
		} else {
			out[i] = reverb.Sample{L: frame[0], R: frame[1]}
		}
	}

	return out, nil
}

// FromStereo builds a two-channel clip.
func FromStereo(sampleRate int, frames []reverb.Sample) *Clip {
	c := &Clip{SampleRate: sampleRate, Channels: 2, Samples: make([]float64, 2*len(frames))}
	for i, s := range frames {
		c.Samples[2*i] = s.L
		c.Samples[2*i+1] = s.R
	}

	return c
}

// Read decodes the file at path, picking the decoder from its extension.
func Read(path string) (*Clip, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	clip, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return clip, nil
}

// Decode reads a whole stream of the given format.
func Decode(r io.ReadSeeker, format Format) (*Clip, error) {
	switch format {
	case WAV:
		return decodeWAV(r)
	case AIFF:
		return decodeAIFF(r)
	case MP3:
		return decodeMP3(r)
	case Vorbis:
		return decodeVorbis(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Write encodes c as integer PCM WAV at path. bitDepth is 16, 24 or 32.
func Write(path string, c *Clip, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodeWAV(f, c, bitDepth)
}
