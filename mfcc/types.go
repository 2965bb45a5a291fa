// Package mfcc defines extraction options and sentinel errors.
package mfcc

import "errors"

// Sentinel errors for MFCC extraction.
var (
	// ErrEmptyAudio indicates audio with no channels or no samples.
	ErrEmptyAudio = errors.New("mfcc: audio must have at least one channel and one sample")
	// ErrOptionViolation indicates an invalid Options field combination.
	ErrOptionViolation = errors.New("mfcc: invalid option supplied")
)

// Options configures MFCC extraction geometry.
//
// Fields:
//   - WindowDuration — analysis window length in seconds.
//   - HopDuration    — stride between successive frames in seconds; the
//     output has one vector per hop and 1/HopDuration frames per second.
//   - FFTOrder      — FFT size; must be a power of two. Frames longer than
//     the order are transformed at the next power of two that fits them.
//   - ZeroFirstCoefficient — clear c₀ (frame energy) after the transform.
//   - FilterbankSize — number of triangular mel filters.
//   - FeatureCount   — cepstral coefficients kept per frame.
//   - PreEmphasis    — first-order high-pass coefficient (0 disables).
type Options struct {
	WindowDuration       float64
	HopDuration          float64
	FFTOrder             int
	ZeroFirstCoefficient bool
	FilterbankSize       int
	FeatureCount         int
	PreEmphasis          float64
}

// DefaultOptions returns conventional speech-analysis settings:
// 25 ms window, 10 ms hop, FFT order 512, 40 mel filters, 13 coefficients,
// pre-emphasis 0.97, energy coefficient kept.
func DefaultOptions() Options {
	return Options{
		WindowDuration:       0.025,
		HopDuration:          0.010,
		FFTOrder:             512,
		ZeroFirstCoefficient: false,
		FilterbankSize:       40,
		FeatureCount:         13,
		PreEmphasis:          0.97,
	}
}

// FramesPerSecond returns the temporal resolution of the output sequence.
func (o Options) FramesPerSecond() float64 {
	if o.HopDuration <= 0 {
		return 0
	}

	return 1 / o.HopDuration
}

// validate reports the first Options violation, if any.
func (o Options) validate() error {
	if o.WindowDuration <= 0 || o.HopDuration <= 0 {
		return ErrOptionViolation
	}
	if o.FFTOrder < 2 || o.FFTOrder&(o.FFTOrder-1) != 0 {
		return ErrOptionViolation
	}
	if o.FilterbankSize < 1 || o.FeatureCount < 1 || o.FeatureCount > o.FilterbankSize {
		return ErrOptionViolation
	}
	if o.PreEmphasis < 0 || o.PreEmphasis >= 1 {
		return ErrOptionViolation
	}

	return nil
}
