package audiofile

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

const readChunk = 4096

// pcmReader is the part of the go-audio decoders the readers need.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// readPCM drains dec into a clip, scaling integers by their bit depth.
func readPCM(dec pcmReader, bitDepth int) (*Clip, error) {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidFile)
	}

	clip := &Clip{SampleRate: format.SampleRate, Channels: format.NumChannels}
	buf := &goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, readChunk*format.NumChannels),
		SourceBitDepth: bitDepth,
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, err
		}

		if n == 0 {
			break
		}

		for _, v := range buf.Data[:n] {
			clip.Samples = append(clip.Samples, float64(v)/scale)
		}
	}

	return clip, nil
}

// toInt quantises v to a signed integer of the given full scale, clipping
// at the rails.
func toInt(v, scale float64) int {
	q := math.Round(v * scale)
	if q > scale-1 {
		q = scale - 1
	}

	if q < -scale {
		q = -scale
	}

	return int(q)
}
