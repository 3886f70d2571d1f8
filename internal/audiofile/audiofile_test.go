package audiofile

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"a.wav":       WAV,
		"b.WAV":       WAV,
		"dir/c.aif":   AIFF,
		"d.aiff":      AIFF,
		"e.mp3":       MP3,
		"f.ogg":       Vorbis,
		"g.tar.ogg":   Vorbis,
		"h.some.WAVE": WAV,
	}

	for path, want := range cases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("song.flac")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FormatFromPath("noext")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestClipStereo(t *testing.T) {
	mono := &Clip{SampleRate: 8000, Channels: 1, Samples: []float64{0.1, -0.2}}
	frames, err := mono.Stereo()
	require.NoError(t, err)
	assert.Equal(t, []reverb.Sample{{L: 0.1, R: 0.1}, {L: -0.2, R: -0.2}}, frames)

	quad := &Clip{SampleRate: 8000, Channels: 4, Samples: []float64{1, 2, 3, 4, 5, 6, 7, 8}}
	frames, err = quad.Stereo()
	require.NoError(t, err)
	assert.Equal(t, []reverb.Sample{{L: 1, R: 2}, {L: 5, R: 6}}, frames)
	assert.Equal(t, 2, quad.Frames())
	assert.InDelta(t, 0.00025, quad.Duration(), 1e-12)

	_, err = (&Clip{}).Stereo()
	assert.ErrorIs(t, err, ErrEmptyClip)
	assert.Zero(t, (&Clip{}).Duration())
}

func TestFromStereo(t *testing.T) {
	c := FromStereo(44100, []reverb.Sample{{L: 1, R: -1}, {L: 0.5, R: 0.25}})
	assert.Equal(t, 2, c.Channels)
	assert.Equal(t, []float64{1, -1, 0.5, 0.25}, c.Samples)

	back, err := c.Stereo()
	require.NoError(t, err)
	assert.Equal(t, []reverb.Sample{{L: 1, R: -1}, {L: 0.5, R: 0.25}}, back)
}

func TestWAVRoundTrip(t *testing.T) {
	want := []float64{0, 0.5, -0.5, 0.25, -1, 0.75, 0.125, -0.125}

	for _, depth := range []int{16, 24, 32} {
		path := filepath.Join(t.TempDir(), "clip.wav")
		require.NoError(t, Write(path, &Clip{SampleRate: 48000, Channels: 2, Samples: want}, depth))

		got, err := Read(path)
		require.NoError(t, err, "depth %d", depth)
		assert.Equal(t, 48000, got.SampleRate)
		assert.Equal(t, 2, got.Channels)
		require.Len(t, got.Samples, len(want))

		for i := range want {
			assert.InDelta(t, want[i], got.Samples[i], 1e-9, "depth %d index %d", depth, i)
		}
	}
}

func TestWAVClipsAtFullScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hot.wav")
	require.NoError(t, Write(path, &Clip{SampleRate: 8000, Channels: 1, Samples: []float64{2, -2, 1}}, 16))

	got, err := Read(path)
	require.NoError(t, err)
	assert.InDelta(t, 32767.0/32768, got.Samples[0], 1e-12)
	assert.Equal(t, -1.0, got.Samples[1])
	assert.InDelta(t, 32767.0/32768, got.Samples[2], 1e-12)
}

func TestEncodeWAVRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.wav")

	assert.ErrorIs(t, Write(path, &Clip{SampleRate: 8000}, 16), ErrEmptyClip)
	assert.ErrorIs(t, Write(path, &Clip{SampleRate: 8000, Channels: 1}, 8), ErrUnsupportedBitDepth)
	assert.ErrorIs(t, Write(path, &Clip{SampleRate: 8000, Channels: 1}, 12), ErrUnsupportedBitDepth)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	garbage := bytes.Repeat([]byte("not audio "), 64)

	for _, f := range []Format{WAV, AIFF, MP3, Vorbis} {
		_, err := Decode(bytes.NewReader(garbage), f)
		assert.Error(t, err, "format %s", f)
	}

	_, err := Decode(bytes.NewReader(garbage), Format("flac"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

type fakePCM struct {
	format *goaudio.Format
	data   []int
}

func (f *fakePCM) Format() *goaudio.Format { return f.format }

func (f *fakePCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.data)
	f.data = f.data[n:]

	return n, nil
}

func TestReadPCMScalesByBitDepth(t *testing.T) {
	dec := &fakePCM{
		format: &goaudio.Format{NumChannels: 1, SampleRate: 22050},
		data:   []int{0, 4194304, -8388608, 8388607},
	}

	clip, err := readPCM(dec, 24)
	require.NoError(t, err)
	assert.Equal(t, 22050, clip.SampleRate)
	assert.Equal(t, []float64{0, 0.5, -1, 8388607.0 / 8388608}, clip.Samples)

	_, err = readPCM(&fakePCM{format: dec.format}, 20)
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)

	_, err = readPCM(&fakePCM{}, 16)
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestReadPCMSpansChunks(t *testing.T) {
	data := make([]int, 3*readChunk*2+5)
	for i := range data {
		data[i] = i % 100
	}

	clip, err := readPCM(&fakePCM{format: &goaudio.Format{NumChannels: 2, SampleRate: 8000}, data: data}, 16)
	require.NoError(t, err)
	require.Len(t, clip.Samples, len(data))
	assert.Equal(t, 99.0/32768, clip.Samples[99])
}

// fakeMP3 hands out bytes in awkward odd-sized reads.
type fakeMP3 struct {
	data []byte
}

func (f *fakeMP3) SampleRate() int { return 44100 }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, io.EOF
	}

	n := copy(p[:min(len(p), 3)], f.data)
	f.data = f.data[n:]

	return n, nil
}

func TestReadMP3CarriesOddBytes(t *testing.T) {
	// Three stereo frames of int16 LE: 0x4000 = 0.5, 0xC000 = -0.5.
	raw := []byte{
		0x00, 0x40, 0x00, 0xC0,
		0x00, 0x00, 0x00, 0x20,
		0xFF, 0x7F, 0x00, 0x80,
	}

	clip, err := readMP3(&fakeMP3{data: raw})
	require.NoError(t, err)
	assert.Equal(t, 44100, clip.SampleRate)
	assert.Equal(t, 2, clip.Channels)
	assert.Equal(t, []float64{0.5, -0.5, 0, 0.25, 32767.0 / 32768, -1}, clip.Samples)
}
