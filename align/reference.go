package align

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/timeline"
)

// CreateAlignmentReference synthesizes a reference recording for
// transcript in the given language and normalizes it for alignment:
// resampled to 16 kHz, downmixed to mono at unit peak, with the
// clause-grouped synthesis timeline flattened to word level.
//
// The transcript is split on whitespace into the fragments handed to the
// synthesizer. Synthesizer failures surface unchanged.
func CreateAlignmentReference(ctx context.Context, synth Synthesizer,
	transcript, language string, synthOpts SynthesisOptions) (*Reference, error) {
	fragments := strings.Fields(transcript)
	if len(fragments) == 0 {
		return nil, fmt.Errorf("%w: empty transcript", ErrInvariantViolation)
	}
	synthOpts.Language = language

	result, err := synth.Synthesize(ctx, fragments, synthOpts)
	if err != nil {
		return nil, fmt.Errorf("align: synthesizing reference: %w", err)
	}

	resampled, err := audio.ResampleTo16k(result.Audio)
	if err != nil {
		return nil, fmt.Errorf("align: resampling reference: %w", err)
	}
	normalized, err := audio.DownmixMonoNormalize(resampled)
	if err != nil {
		return nil, fmt.Errorf("align: normalizing reference: %w", err)
	}

	return &Reference{
		Audio:     normalized,
		Timeline:  timeline.FlattenToWords(result.Timeline),
		VoiceName: result.VoiceName,
	}, nil
}
