package audiofile

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

func decodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrInvalidFile)
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: WAV format tag %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	return readPCM(dec, int(dec.BitDepth))
}

// EncodeWAV writes c to w as integer PCM.
func EncodeWAV(w io.WriteSeeker, c *Clip, bitDepth int) error {
	if c.Channels <= 0 {
		return ErrEmptyClip
	}

	if bitDepth == 8 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: c.Channels, SampleRate: c.SampleRate},
		Data:           make([]int, len(c.Samples)),
		SourceBitDepth: bitDepth,
	}

	for i, v := range c.Samples {
		buf.Data[i] = toInt(v, scale)
	}

	enc := wav.NewEncoder(w, c.SampleRate, bitDepth, c.Channels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}

	return enc.Close()
}
