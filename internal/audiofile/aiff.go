package audiofile

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
)

func decodeAIFF(r io.ReadSeeker) (*Clip, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not an AIFF file", ErrInvalidFile)
	}

	dec.ReadInfo()

	return readPCM(dec, int(dec.BitDepth))
}
