package audiofile

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

func decodeVorbis(r io.Reader) (*Clip, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	clip := &Clip{
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		Samples:    make([]float64, len(data)),
	}

	for i, v := range data {
		clip.Samples[i] = float64(v)
	}

	return clip, nil
}
