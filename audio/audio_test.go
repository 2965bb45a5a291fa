package audio_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine generates seconds of a sine tone at freq Hz with the given amplitude.
func sine(seconds, freq, amplitude float64, rate int) []float32 {
	n := int(seconds * float64(rate))
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}

	return out
}

// TestRawAudio_Duration verifies duration math and the empty-audio zeroes.
func TestRawAudio_Duration(t *testing.T) {
	a := &audio.RawAudio{Channels: [][]float32{make([]float32, 8000)}, SampleRate: 16000}
	assert.InDelta(t, 0.5, a.Duration(), 1e-9, "8000 samples at 16 kHz is half a second")
	assert.Equal(t, 8000, a.SampleCount())

	var empty *audio.RawAudio
	assert.Equal(t, 0.0, empty.Duration(), "nil audio has zero duration")
	assert.Equal(t, 0, empty.SampleCount())
}

// TestStartingSilentSampleCount checks that a silent prefix is measured at
// analysis-frame resolution and a loud start yields zero.
func TestStartingSilentSampleCount(t *testing.T) {
	rate := 16000
	silence := make([]float32, 3200)
	tone := sine(0.5, 440, 0.5, rate)
	samples := append(append([]float32{}, silence...), tone...)

	lead := audio.StartingSilentSampleCount(samples, audio.DefaultSilenceThresholdDb)
	assert.Equal(t, 3200, lead, "silent prefix must be fully skipped")

	assert.Equal(t, 0, audio.StartingSilentSampleCount(tone, audio.DefaultSilenceThresholdDb),
		"a loud first frame means no silent prefix")

	assert.Equal(t, len(silence), audio.StartingSilentSampleCount(silence, audio.DefaultSilenceThresholdDb),
		"all-silent input is one long prefix")
}

// TestEndingSilentSampleCount checks the mirrored trailing-silence scan.
func TestEndingSilentSampleCount(t *testing.T) {
	rate := 16000
	tone := sine(0.5, 440, 0.5, rate)
	silence := make([]float32, 4800)
	samples := append(append([]float32{}, tone...), silence...)

	trail := audio.EndingSilentSampleCount(samples, audio.DefaultSilenceThresholdDb)
	assert.Equal(t, 4800, trail, "silent suffix must be fully measured")

	assert.Equal(t, 0, audio.EndingSilentSampleCount(tone, audio.DefaultSilenceThresholdDb),
		"a loud last frame means no silent suffix")
}

// TestResampleLinear_Duration verifies that resampling preserves duration
// and produces the requested rate.
func TestResampleLinear_Duration(t *testing.T) {
	src := &audio.RawAudio{Channels: [][]float32{sine(1.0, 440, 0.5, 48000)}, SampleRate: 48000}

	out, err := audio.ResampleTo16k(src)
	require.NoError(t, err)
	assert.Equal(t, 16000, out.SampleRate)
	assert.InDelta(t, src.Duration(), out.Duration(), 1e-3, "duration must survive resampling")
}

// TestResampleLinear_SameRate returns the input untouched.
func TestResampleLinear_SameRate(t *testing.T) {
	src := &audio.RawAudio{Channels: [][]float32{sine(0.1, 440, 0.5, 16000)}, SampleRate: 16000}
	out, err := audio.ResampleLinear(src, 16000)
	require.NoError(t, err)
	assert.Same(t, src, out, "matching rate must be a no-op")
}

// TestResampleLinear_EmptyAudio rejects empty input with ErrEmptyAudio.
func TestResampleLinear_EmptyAudio(t *testing.T) {
	_, err := audio.ResampleLinear(&audio.RawAudio{SampleRate: 16000}, 8000)
	assert.ErrorIs(t, err, audio.ErrEmptyAudio)
}

// TestDownmixMonoNormalize folds stereo to mono and scales to unit peak.
func TestDownmixMonoNormalize(t *testing.T) {
	left := sine(0.25, 440, 0.25, 16000)
	right := sine(0.25, 440, 0.25, 16000)
	src := &audio.RawAudio{Channels: [][]float32{left, right}, SampleRate: 16000}

	out, err := audio.DownmixMonoNormalize(src)
	require.NoError(t, err)
	require.Len(t, out.Channels, 1, "downmix must produce one channel")

	var peak float32
	for _, s := range out.Channels[0] {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	assert.InDelta(t, 1.0, float64(peak), 1e-3, "normalization must reach unit peak")
}

// TestDownmixMonoNormalize_Silent keeps all-zero audio all-zero.
func TestDownmixMonoNormalize_Silent(t *testing.T) {
	src := &audio.RawAudio{Channels: [][]float32{make([]float32, 1000)}, SampleRate: 16000}
	out, err := audio.DownmixMonoNormalize(src)
	require.NoError(t, err)
	for _, s := range out.Channels[0] {
		require.Zero(t, s, "silence must not be amplified")
	}
}

// TestWAV_RoundTrip encodes RawAudio to a WAV file and decodes it back,
// expecting the waveform to survive within 16-bit quantization error.
func TestWAV_RoundTrip(t *testing.T) {
	src := &audio.RawAudio{Channels: [][]float32{sine(0.25, 440, 0.5, 16000)}, SampleRate: 16000}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, audio.EncodeWAV(f, src))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	out, err := audio.DecodeWAV(f)
	require.NoError(t, err)
	assert.Equal(t, src.SampleRate, out.SampleRate)
	require.Equal(t, src.SampleCount(), out.SampleCount())
	for i := 0; i < src.SampleCount(); i += 97 {
		assert.InDelta(t, src.Channels[0][i], out.Channels[0][i], 1e-3,
			"sample %d must survive 16-bit quantization", i)
	}
}

// TestEncodeWAV_EmptyAudio rejects empty input.
func TestEncodeWAV_EmptyAudio(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "empty.wav"))
	require.NoError(t, err)
	defer f.Close()

	assert.ErrorIs(t, audio.EncodeWAV(f, &audio.RawAudio{SampleRate: 16000}), audio.ErrEmptyAudio)
}
