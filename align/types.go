// Package align defines granularity profiles, options, collaborator
// interfaces and sentinel errors for the alignment driver.
package align

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/mfcc"
	"github.com/katalvlaran/speechwarp/timeline"
)

// Sentinel errors for alignment execution.
var (
	// ErrInvariantViolation indicates mismatched argument lengths, empty
	// pass lists, or negative timestamps in the input timeline.
	ErrInvariantViolation = errors.New("align: invariant violation")

	// ErrUnknownGranularity is returned for a granularity tag outside the
	// supported set.
	ErrUnknownGranularity = errors.New("align: unknown granularity")

	// ErrUnsupportedPhoneAlignmentMethod is returned for a phone-alignment
	// method outside {interpolation, dtw}.
	ErrUnsupportedPhoneAlignmentMethod = errors.New("align: unsupported phone alignment method")
)

// Granularity selects the MFCC geometry of one refinement pass: finer
// granularities shorten the analysis window and hop, trading memory and
// compute for temporal precision.
type Granularity string

const (
	// GranularityXXLow uses a 400 ms window and 160 ms hop.
	GranularityXXLow Granularity = "xx-low"
	// GranularityXLow uses a 200 ms window and 80 ms hop.
	GranularityXLow Granularity = "x-low"
	// GranularityLow uses a 100 ms window and 40 ms hop.
	GranularityLow Granularity = "low"
	// GranularityMedium uses a 50 ms window and 20 ms hop.
	GranularityMedium Granularity = "medium"
	// GranularityHigh uses a 25 ms window and 10 ms hop.
	GranularityHigh Granularity = "high"
	// GranularityXHigh uses a 20 ms window and 5 ms hop.
	GranularityXHigh Granularity = "x-high"
)

// granularityProfile fixes the MFCC geometry of one pass.
type granularityProfile struct {
	windowDuration float64
	hopDuration    float64
	fftOrder       int
}

var granularityProfiles = map[Granularity]granularityProfile{
	GranularityXXLow:  {windowDuration: 0.400, hopDuration: 0.160, fftOrder: 8192},
	GranularityXLow:   {windowDuration: 0.200, hopDuration: 0.080, fftOrder: 4096},
	GranularityLow:    {windowDuration: 0.100, hopDuration: 0.040, fftOrder: 2048},
	GranularityMedium: {windowDuration: 0.050, hopDuration: 0.020, fftOrder: 1024},
	GranularityHigh:   {windowDuration: 0.025, hopDuration: 0.010, fftOrder: 512},
	GranularityXHigh:  {windowDuration: 0.020, hopDuration: 0.005, fftOrder: 512},
}

// mfccOptions binds a granularity to extractor options. The zeroth
// cepstral coefficient is always cleared so alignment is energy-invariant.
func (g Granularity) mfccOptions() (mfcc.Options, error) {
	prof, ok := granularityProfiles[g]
	if !ok {
		return mfcc.Options{}, ErrUnknownGranularity
	}

	opts := mfcc.DefaultOptions()
	opts.WindowDuration = prof.windowDuration
	opts.HopDuration = prof.hopDuration
	opts.FFTOrder = prof.fftOrder
	opts.ZeroFirstCoefficient = true

	return opts, nil
}

// PhoneAlignmentMethod selects how phone timings are attached to
// recognized words in indirect alignment.
type PhoneAlignmentMethod string

const (
	// PhoneAlignmentInterpolation scales synthesized phone intervals
	// linearly into each recognized word's interval.
	PhoneAlignmentInterpolation PhoneAlignmentMethod = "interpolation"
	// PhoneAlignmentDTW warps each recognized word against its synthesized
	// rendition and maps phone boundaries through the warp path.
	PhoneAlignmentDTW PhoneAlignmentMethod = "dtw"
)

// SynthesisOptions carries the request parameters for the external TTS
// collaborator.
type SynthesisOptions struct {
	// Language is the BCP 47 tag of the text to synthesize.
	Language string
	// Voice optionally pins a specific voice; empty lets the engine choose.
	Voice string
}

// SynthesisResult is what the external TTS returns: the rendered audio, a
// clause-grouped timeline with word and phone timings, and the voice used.
type SynthesisResult struct {
	Audio     *audio.RawAudio
	Timeline  timeline.Timeline
	VoiceName string
}

// Synthesizer is the external text-to-speech collaborator. Failures
// surface to alignment callers unchanged; the driver performs no retries.
type Synthesizer interface {
	Synthesize(ctx context.Context, fragments []string, opts SynthesisOptions) (SynthesisResult, error)
}

// Reference is a synthesized alignment reference: normalized 16 kHz mono
// audio, a flat word-level timeline, and the voice that produced it.
type Reference struct {
	Audio     *audio.RawAudio
	Timeline  timeline.Timeline
	VoiceName string
}

// Option configures the alignment driver via functional arguments.
type Option func(*options)

// options holds driver-wide settings shared by all public operations.
type options struct {
	logger zerolog.Logger
}

// defaultOptions returns a silent driver: zerolog.Nop().
func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger routes pass progress and resource advisories to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// applyOptions folds functional options over the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
