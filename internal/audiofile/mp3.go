package audiofile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always yields 16-bit little-endian stereo.
const mp3Channels = 2

// mp3Reader is the part of gomp3.Decoder the reader needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

func decodeMP3(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return readMP3(dec)
}

func readMP3(dec mp3Reader) (*Clip, error) {
	clip := &Clip{SampleRate: dec.SampleRate(), Channels: mp3Channels}
	buf := make([]byte, 8192)

	// A read may end mid-sample; the odd byte is carried over.
	var carry int

	for {
		n, err := dec.Read(buf[carry:])
		n += carry

		whole := n &^ 1
		for i := 0; i < whole; i += 2 {
			v := int16(binary.LittleEndian.Uint16(buf[i:]))
			clip.Samples = append(clip.Samples, float64(v)/32768)
		}

		carry = n - whole
		if carry == 1 {
			buf[0] = buf[whole]
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}
	}

	// Drop a trailing half frame.
	clip.Samples = clip.Samples[:len(clip.Samples)&^1]

	return clip, nil
}
