package align_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/speechwarp/align"
	"github.com/katalvlaran/speechwarp/dtw"
	"github.com/katalvlaran/speechwarp/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlignUsingDTW_Identity aligns a recording against itself: the output
// timeline must equal the input within one hop duration (20 ms at medium
// granularity).
func TestAlignUsingDTW_Identity(t *testing.T) {
	a := toneLadder(ladderFreqs, 0.5, testRate) // 5 s
	refTimeline := timeline.Timeline{word("a", 0.0, 2.5), word("b", 2.5, 5.0)}

	out, err := align.AlignUsingDTW(context.Background(), a, a, refTimeline,
		[]align.Granularity{align.GranularityMedium}, []float64{5.0})
	require.NoError(t, err)
	require.Len(t, out, 2)
	requireTimelinePreserved(t, out)

	assert.InDelta(t, 0.0, out[0].StartTime, 0.021)
	assert.InDelta(t, 2.5, out[0].EndTime, 0.021)
	assert.InDelta(t, 2.5, out[1].StartTime, 0.021)
	assert.InDelta(t, 5.0, out[1].EndTime, 0.021)
	assert.Equal(t, "a", out[0].Text)
	assert.Equal(t, "b", out[1].Text)
}

// TestAlignUsingDTW_DoubleSpeed aligns against a rendition where every
// tone lasts twice as long: boundaries must land at twice their reference
// times.
func TestAlignUsingDTW_DoubleSpeed(t *testing.T) {
	reference := toneLadder(ladderFreqs, 0.5, testRate) // 5 s
	source := toneLadder(ladderFreqs, 1.0, testRate)    // 10 s

	refTimeline := timeline.Timeline{word("a", 0.0, 2.5), word("b", 2.5, 5.0)}

	out, err := align.AlignUsingDTW(context.Background(), source, reference, refTimeline,
		[]align.Granularity{align.GranularityMedium}, []float64{10.0})
	require.NoError(t, err)
	require.Len(t, out, 2)
	requireTimelinePreserved(t, out)

	assert.InDelta(t, 0.0, out[0].StartTime, 0.05)
	assert.InDelta(t, 5.0, out[0].EndTime, 0.05)
	assert.InDelta(t, 5.0, out[1].StartTime, 0.05)
	assert.InDelta(t, 10.0, out[1].EndTime, 0.05)
}

// TestAlignUsingDTW_TrailingSilenceTrim appends three seconds of silence
// to the source: the mapped word may not extend into it.
func TestAlignUsingDTW_TrailingSilenceTrim(t *testing.T) {
	reference := toneLadder([]float64{440, 880}, 0.5, testRate) // 1 s
	withSilence := toneLadder([]float64{440, 880}, 0.5, testRate)
	silence := make([]float32, 3*testRate)
	withSilence.Channels[0] = append(withSilence.Channels[0], silence...)

	refTimeline := timeline.Timeline{word("hello", 0.0, 1.0)}

	out, err := align.AlignUsingDTW(context.Background(), withSilence, reference, refTimeline,
		[]align.Granularity{align.GranularityMedium}, []float64{4.0})
	require.NoError(t, err)
	require.Len(t, out, 1)
	requireTimelinePreserved(t, out)

	assert.LessOrEqual(t, out[0].EndTime, 1.05, "trailing silence must be trimmed off the word")
	assert.Greater(t, out[0].EndTime, out[0].StartTime)
}

// TestAlignUsingDTW_MultiPassConsistency compares a coarse+fine two-pass
// schedule against a single fine pass: boundaries must agree within 0.1 s
// while the final pass's banded matrix is several times smaller.
func TestAlignUsingDTW_MultiPassConsistency(t *testing.T) {
	a := toneLadder(ladderFreqs, 0.5, testRate) // 5 s
	refTimeline := timeline.Timeline{word("a", 0.0, 2.5), word("b", 2.5, 5.0)}

	multi, err := align.AlignUsingDTW(context.Background(), a, a, refTimeline,
		[]align.Granularity{align.GranularityLow, align.GranularityHigh}, []float64{5.0, 0.5})
	require.NoError(t, err)
	single, err := align.AlignUsingDTW(context.Background(), a, a, refTimeline,
		[]align.Granularity{align.GranularityHigh}, []float64{5.0})
	require.NoError(t, err)

	require.Len(t, multi, len(single))
	for i := range multi {
		assert.InDelta(t, single[i].StartTime, multi[i].StartTime, 0.1)
		assert.InDelta(t, single[i].EndTime, multi[i].EndTime, 0.1)
	}

	// High granularity is 100 frames/s over 5 s: the single pass carries a
	// ±500-frame band, the refined pass only ±50.
	singleBytes := dtw.EstimateBandedMatrixBytes(500, 500, 500)
	multiBytes := dtw.EstimateBandedMatrixBytes(500, 500, 50)
	assert.GreaterOrEqual(t, singleBytes, 5*multiBytes,
		"refined pass must use at least 5x less matrix memory")
}

// TestAlignUsingDTW_NestedTimeline maps children recursively and keeps
// them within their parent's interval (the tone ladder has no silence, so
// no edge is trimmed).
func TestAlignUsingDTW_NestedTimeline(t *testing.T) {
	a := toneLadder(ladderFreqs, 0.5, testRate)
	refTimeline := timeline.Timeline{
		{
			Type: timeline.EntryTypeSegment, Text: "all", StartTime: 0, EndTime: 5,
			Timeline: timeline.Timeline{word("a", 0.0, 2.5), word("b", 2.5, 5.0)},
		},
	}

	out, err := align.AlignUsingDTW(context.Background(), a, a, refTimeline,
		[]align.Granularity{align.GranularityMedium}, []float64{5.0})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Timeline, 2)
	requireTimelinePreserved(t, out)

	parent := out[0]
	for _, child := range parent.Timeline {
		assert.GreaterOrEqual(t, child.StartTime, parent.StartTime, "child %q starts inside its parent", child.Text)
		assert.LessOrEqual(t, child.EndTime, parent.EndTime, "child %q ends inside its parent", child.Text)
	}
}

// TestAlignUsingDTW_InvariantViolations rejects empty or mismatched pass
// lists and negative input timestamps.
func TestAlignUsingDTW_InvariantViolations(t *testing.T) {
	a := toneLadder([]float64{440}, 0.5, testRate)
	tl := timeline.Timeline{word("x", 0, 0.5)}

	_, err := align.AlignUsingDTW(context.Background(), a, a, tl, nil, nil)
	assert.ErrorIs(t, err, align.ErrInvariantViolation, "empty pass lists must fail fast")

	_, err = align.AlignUsingDTW(context.Background(), a, a, tl,
		[]align.Granularity{align.GranularityMedium}, []float64{1.0, 2.0})
	assert.ErrorIs(t, err, align.ErrInvariantViolation, "mismatched lengths must fail fast")

	bad := timeline.Timeline{word("x", -0.5, 0.5)}
	_, err = align.AlignUsingDTW(context.Background(), a, a, bad,
		[]align.Granularity{align.GranularityMedium}, []float64{1.0})
	assert.ErrorIs(t, err, align.ErrInvariantViolation, "negative timestamps must fail fast")
}

// TestAlignUsingDTW_UnknownGranularity rejects unsupported tags.
func TestAlignUsingDTW_UnknownGranularity(t *testing.T) {
	a := toneLadder([]float64{440}, 0.5, testRate)
	tl := timeline.Timeline{word("x", 0, 0.5)}

	_, err := align.AlignUsingDTW(context.Background(), a, a, tl,
		[]align.Granularity{"ultra"}, []float64{1.0})
	assert.ErrorIs(t, err, align.ErrUnknownGranularity)
}

// TestAlignUsingDTW_Cancellation returns ctx.Err() and no partial result.
func TestAlignUsingDTW_Cancellation(t *testing.T) {
	a := toneLadder([]float64{440}, 0.5, testRate)
	tl := timeline.Timeline{word("x", 0, 0.5)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := align.AlignUsingDTW(ctx, a, a, tl,
		[]align.Granularity{align.GranularityMedium}, []float64{1.0})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out, "a cancelled alignment must yield no partial result")
}

// TestAlignUsingDTW_NarrowWindowAdvisory logs a warning (and proceeds)
// when the first-pass window is narrower than 20% of the source duration.
func TestAlignUsingDTW_NarrowWindowAdvisory(t *testing.T) {
	a := toneLadder(ladderFreqs, 0.5, testRate) // 5 s; 20% floor is 1 s
	tl := timeline.Timeline{word("a", 0, 5)}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	_, err := align.AlignUsingDTW(context.Background(), a, a, tl,
		[]align.Granularity{align.GranularityMedium}, []float64{0.5},
		align.WithLogger(logger))
	require.NoError(t, err, "a narrow window is advisory, not an error")
	assert.Contains(t, buf.String(), "narrower than 20%")
}
