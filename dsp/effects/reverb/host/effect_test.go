package host

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
	"github.com/cwbudde/algo-reverb/internal/testutil"
)

func newEffect(t *testing.T, channels int) (*Effect, *logtest.Hook) {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	e, err := New(48000, channels, 256, WithLogger(logger))
	require.NoError(t, err)

	return e, hook
}

func stereoFrame(n int) []float32 {
	return testutil.Interleave32(
		testutil.DeterministicNoise(1, 0.5, n),
		testutil.DeterministicNoise(2, 0.5, n),
	)
}

func countLevel(hook *logtest.Hook, level logrus.Level) int {
	n := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == level {
			n++
		}
	}

	return n
}

func TestNewRejectsBadRate(t *testing.T) {
	_, err := New(0, 2, 256)
	assert.Error(t, err)
}

func TestStartsWithoutEnvironment(t *testing.T) {
	e, _ := newEffect(t, 2)
	assert.False(t, e.HasValidEnvironment())

	in := stereoFrame(256)
	out := make([]float32, len(in))
	e.Apply(in, out)
	assert.Equal(t, in, out)
}

func TestPresetEnvironment(t *testing.T) {
	e, hook := newEffect(t, 2)

	require.NoError(t, e.SetEnvironment([]float32{EnvPreset, float32(reverb.PresetLargeHall1)}))
	assert.True(t, e.HasValidEnvironment())

	p, ok := e.Engine().Params()
	require.True(t, ok)
	assert.Equal(t, 4.5, p.RT60)
	assert.Equal(t, 48000.0, p.SampleRate)

	in := stereoFrame(256)
	out := make([]float32, len(in))
	e.Apply(in, out)
	assert.NotEqual(t, in, out)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "largehall1", entry.Data["preset"])
}

func TestBypassEnvironment(t *testing.T) {
	e, _ := newEffect(t, 2)
	require.NoError(t, e.SetEnvironment([]float32{EnvPreset, 0}))
	require.NoError(t, e.SetEnvironment([]float32{EnvBypass}))
	assert.False(t, e.HasValidEnvironment())

	in := stereoFrame(64)
	out := make([]float32, len(in))
	e.Apply(in, out)
	assert.Equal(t, in, out)
}

func TestAdvancedEnvironment(t *testing.T) {
	e, _ := newEffect(t, 2)

	want, err := reverb.PresetSmallRoom2.Params(48000)
	require.NoError(t, err)

	env := make([]float32, EnvLen)
	for i, v := range EncodeParams(want) {
		env[i] = float32(v)
	}

	require.NoError(t, e.SetEnvironment(env))
	assert.True(t, e.HasValidEnvironment())

	got, ok := e.Engine().Params()
	require.True(t, ok)
	assert.Equal(t, want.Oversample, got.Oversample)
	assert.InDelta(t, want.RT60, got.RT60, 1e-6)
	assert.InDelta(t, want.DampLPF, got.DampLPF, 1e-3)
}

func TestRejectedEnvironmentKeepsPrevious(t *testing.T) {
	e, hook := newEffect(t, 2)
	require.NoError(t, e.SetEnvironment([]float32{EnvPreset, float32(reverb.PresetPlateLow)}))

	assert.ErrorIs(t, e.SetEnvironment([]float32{EnvPreset, 77}), reverb.ErrUnknownPreset)
	assert.ErrorIs(t, e.SetEnvironment([]float32{1, 0.5}), ErrShortEnvironment)
	assert.ErrorIs(t, e.SetEnvironment(nil), ErrShortEnvironment)

	assert.True(t, e.HasValidEnvironment())
	assert.Equal(t, 3, countLevel(hook, logrus.ErrorLevel))

	p, _ := e.Engine().Params()
	assert.Equal(t, 2.6, p.RT60)
}

func TestNonStereoPassesThroughAndWarnsOnce(t *testing.T) {
	e, hook := newEffect(t, 1)
	require.NoError(t, e.SetEnvironment([]float32{EnvPreset, 0}))

	in := stereoFrame(128)
	out := make([]float32, len(in))

	for range 5 {
		e.Apply(in, out)
		assert.Equal(t, in, out)
	}

	assert.Equal(t, 1, countLevel(hook, logrus.WarnLevel))
}

func TestApplyMatchesEngine(t *testing.T) {
	e, _ := newEffect(t, 2)
	require.NoError(t, e.SetEnvironment([]float32{EnvPreset, float32(reverb.PresetMediumRoom1)}))

	ref, err := reverb.New()
	require.NoError(t, err)
	require.NoError(t, ref.Configure(reverb.Preset{SampleRate: 48000, ID: reverb.PresetMediumRoom1}))

	in := stereoFrame(512)
	out := make([]float32, len(in))

	// Two host frames, the second longer than the preallocated buffer.
	e.Apply(in[:200], out[:200])
	e.Apply(in[200:], out[200:])

	for i := range 512 {
		s := ref.ProcessSample(reverb.Sample{L: float64(in[2*i]), R: float64(in[2*i+1])})
		require.Equal(t, float32(s.L), out[2*i], "frame %d L", i)
		require.Equal(t, float32(s.R), out[2*i+1], "frame %d R", i)
	}
}

func TestApplyInPlace(t *testing.T) {
	e, _ := newEffect(t, 2)
	require.NoError(t, e.SetEnvironment([]float32{EnvPreset, 0}))

	buf := stereoFrame(256)
	e.Apply(buf, buf)

	l, r := testutil.Deinterleave32(buf)
	testutil.RequireFinite(t, l)
	testutil.RequireFinite(t, r)
}

func TestApplyPanicsOnShortOutput(t *testing.T) {
	e, _ := newEffect(t, 2)
	assert.Panics(t, func() {
		e.Apply(make([]float32, 8), make([]float32, 6))
	})
}

func TestNewForStream(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	e, err := NewForStream(core.ApplyStreamOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(512),
		core.WithChannels(2),
	), WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 44100.0, e.sampleRate)
	assert.Equal(t, 2, e.channels)
	assert.Len(t, e.frame, 512)

	_, err = NewForStream(core.StreamConfig{BlockSize: 256, Channels: 2})
	assert.Error(t, err)
}
