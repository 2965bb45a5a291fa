package align

import (
	"context"
	"fmt"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/dtw"
	"github.com/katalvlaran/speechwarp/mfcc"
	"github.com/katalvlaran/speechwarp/timeline"
)

// narrowWindowFraction is the advisory floor for the first pass: a window
// shorter than this fraction of the source duration may clip the true
// alignment corridor.
const narrowWindowFraction = 0.2

// AlignUsingDTW time-warps referenceTimeline from the reference recording
// onto the source recording.
//
// Passes execute in order. Each pass extracts MFCC sequences at its
// granularity (with the zeroth cepstral coefficient cleared), converts its
// window duration into a band half-width in frames, and runs banded DTW —
// the first pass inside a Sakoe–Chiba diagonal band, each later pass
// inside a band centered on the previous pass's compacted path re-sampled
// to the new frame resolution. After the final pass the reference timeline
// is projected through the compacted path onto source time, with silence
// trimming at interval boundaries.
//
// Cancellation is honored between passes: a cancelled alignment returns
// ctx.Err() and no partial timeline.
//
// Errors: ErrInvariantViolation (empty or mismatched pass lists, negative
// input timestamps), ErrUnknownGranularity, and any MFCC extraction error.
func AlignUsingDTW(ctx context.Context, source, reference *audio.RawAudio, referenceTimeline timeline.Timeline,
	granularities []Granularity, windowDurations []float64, opts ...Option) (timeline.Timeline, error) {
	o := applyOptions(opts)

	compacted, fps, err := runPasses(ctx, source, reference, granularities, windowDurations, o)
	if err != nil {
		return nil, err
	}

	return mapTimeline(referenceTimeline, compacted, fps, source)
}

// runPasses executes the multi-pass DTW schedule and returns the final
// compacted path together with the final pass's frame rate.
func runPasses(ctx context.Context, source, reference *audio.RawAudio,
	granularities []Granularity, windowDurations []float64, o options) (dtw.CompactedPath, float64, error) {
	if len(granularities) == 0 || len(granularities) != len(windowDurations) {
		return nil, 0, fmt.Errorf("%w: %d granularities vs %d window durations",
			ErrInvariantViolation, len(granularities), len(windowDurations))
	}

	var (
		prev       dtw.CompactedPath
		prevSrcLen int
		fps        float64
	)
	for p, g := range granularities {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		mopts, err := g.mfccOptions()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %q", err, g)
		}
		fps = mopts.FramesPerSecond()

		refFrames, err := mfcc.Compute(reference, mopts)
		if err != nil {
			return nil, 0, fmt.Errorf("align: extracting reference features: %w", err)
		}
		srcFrames, err := mfcc.Compute(source, mopts)
		if err != nil {
			return nil, 0, fmt.Errorf("align: extracting source features: %w", err)
		}

		window := int(windowDurations[p] * fps)
		if window < 1 {
			window = 1
		}
		if p == 0 && windowDurations[p] < narrowWindowFraction*source.Duration() {
			o.logger.Warn().
				Float64("window_duration", windowDurations[p]).
				Float64("source_duration", source.Duration()).
				Msg("first-pass window is narrower than 20% of the source duration")
		}
		o.logger.Debug().
			Int("pass", p+1).
			Str("granularity", string(g)).
			Int("band_halfwidth", window).
			Int("estimated_matrix_bytes", dtw.EstimateBandedMatrixBytes(len(refFrames), len(srcFrames), window)).
			Msg("running dtw pass")

		dopts := dtw.DefaultOptions()
		dopts.Window = window
		if p > 0 {
			dopts.Centers = resampleCenters(prev, prevSrcLen, len(refFrames), len(srcFrames))
		}

		path, err := dtw.Align(refFrames, srcFrames, dopts)
		if err != nil {
			return nil, 0, err
		}
		prev = path.Compact()
		prevSrcLen = len(srcFrames)
	}

	return prev, fps, nil
}

// resampleCenters projects the previous pass's path centers onto the new
// pass's frame resolution: each previous range midpoint becomes a fraction
// of the previous source axis, and the fraction curve is re-sampled across
// the new reference axis.
func resampleCenters(prev dtw.CompactedPath, prevSrcLen, newRefLen, newSrcLen int) []int {
	relCenters := make([]float64, len(prev))
	for k, fr := range prev {
		relCenters[k] = float64(fr.First+fr.Last) / 2 / float64(prevSrcLen)
	}

	centers := make([]int, newRefLen)
	for i := range centers {
		k := i * len(relCenters) / newRefLen
		centers[i] = int(relCenters[k] * float64(newSrcLen))
	}

	return centers
}
