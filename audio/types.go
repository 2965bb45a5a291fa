// Package audio defines the RawAudio value type and sentinel errors
// shared by the audio utilities of github.com/katalvlaran/speechwarp.
package audio

import "errors"

// Sentinel errors for audio operations.
var (
	// ErrEmptyAudio indicates audio with no channels or no samples.
	ErrEmptyAudio = errors.New("audio: audio must have at least one channel and one sample")
	// ErrInvalidWAV indicates a WAV payload that could not be decoded.
	ErrInvalidWAV = errors.New("audio: invalid WAV data")
)

// DefaultSilenceThresholdDb is the RMS level, in dBFS, below which an
// analysis frame counts as silent.
const DefaultSilenceThresholdDb = -40.0

// silenceAnalysisFrameLength is the silence-scan granularity in samples:
// 10 ms at 16 kHz, i.e. half a medium-granularity MFCC hop and one
// high-granularity hop.
const silenceAnalysisFrameLength = 160

// RawAudio is an immutable multi-channel PCM recording: one float32 slice
// per channel, samples in [−1, 1], and a positive sample rate.
type RawAudio struct {
	Channels   [][]float32
	SampleRate int
}

// SampleCount returns the per-channel sample count (0 for empty audio).
func (a *RawAudio) SampleCount() int {
	if a == nil || len(a.Channels) == 0 {
		return 0
	}

	return len(a.Channels[0])
}

// Duration returns the recording length in seconds.
func (a *RawAudio) Duration() float64 {
	if a == nil || a.SampleRate <= 0 {
		return 0
	}

	return float64(a.SampleCount()) / float64(a.SampleRate)
}
