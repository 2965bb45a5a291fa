package align

import (
	"context"
	"fmt"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/timeline"
)

// phoneAlignmentWindowSeconds is the band window for per-word phone DTW.
// Single words are far shorter, so the band is effectively unbounded.
const phoneAlignmentWindowSeconds = 60.0

// AlignUsingDTWWithRecognition aligns a reference timeline onto a source
// recording whose spoken content does not match the reference transcript
// verbatim, using a recognizer's timeline of what was actually said.
//
// The recognized words are synthesized into an intermediate recording;
// phone timings are attached to the recognition timeline (by interpolation
// or per-word DTW against that intermediate); an anchor table pairs
// synthesized and recognized times at word and phone boundaries; the
// intermediate is aligned to the reference audio with the multi-pass
// driver; and finally every reference-derived timestamp is projected
// through the anchor table onto the source axis by nearest-anchor
// projection (the left anchor wins exact-midpoint ties).
//
// An empty recognition timeline is degenerate input, not an error: the
// reference timeline is returned linearly rescaled by
// sourceDuration/referenceDuration (zero reference duration rescales to
// zero). Synthesizer failures surface unchanged; there are no retries and
// no partial result.
func AlignUsingDTWWithRecognition(ctx context.Context, source, reference *audio.RawAudio,
	referenceTimeline, recognitionTimeline timeline.Timeline,
	granularities []Granularity, windowDurations []float64,
	synth Synthesizer, synthOpts SynthesisOptions, method PhoneAlignmentMethod,
	opts ...Option) (timeline.Timeline, error) {
	if method != PhoneAlignmentInterpolation && method != PhoneAlignmentDTW {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPhoneAlignmentMethod, method)
	}

	recognizedWords := timeline.FlattenToWords(recognitionTimeline)
	if len(recognizedWords) == 0 {
		var factor float64
		if refDur := reference.Duration(); refDur > 0 {
			factor = source.Duration() / refDur
		}

		return referenceTimeline.Rescale(factor), nil
	}

	fragments := make([]string, len(recognizedWords))
	for i, w := range recognizedWords {
		fragments[i] = w.Text
	}
	synthesized, err := synth.Synthesize(ctx, fragments, synthOpts)
	if err != nil {
		return nil, fmt.Errorf("align: synthesizing recognized words: %w", err)
	}
	synthWords := timeline.FlattenToWords(synthesized.Timeline)

	var recognizedWithPhones timeline.Timeline
	if method == PhoneAlignmentDTW {
		recognizedWithPhones, err = AlignPhoneTimelines(source, recognizedWords,
			synthesized.Audio, synthWords, phoneAlignmentWindowSeconds)
		if err != nil {
			return nil, err
		}
	} else {
		recognizedWithPhones = InterpolatePhoneTimelines(recognizedWords, synthWords)
	}

	anchors := buildAnchors(synthWords, recognizedWithPhones)

	// Timestamps for the reference timeline on the synthesized axis.
	onSynthAxis, err := AlignUsingDTW(ctx, synthesized.Audio, reference, referenceTimeline,
		granularities, windowDurations, opts...)
	if err != nil {
		return nil, err
	}

	cursor := &anchorCursor{anchors: anchors}

	return composeEntries(onSynthAxis, cursor), nil
}

// anchor pairs one instant on the synthesized axis with the matching
// instant on the recognized (source) axis.
type anchor struct {
	synthesized float64
	recognized  float64
}

// buildAnchors pairs word boundaries and phone boundaries between the
// synthesized words and the recognized words. Anchors are monotone
// nondecreasing on both axes; out-of-order candidates are lifted to the
// running maximum.
func buildAnchors(synthWords, recognizedWords timeline.Timeline) []anchor {
	var anchors []anchor
	var maxSynth, maxRec float64
	add := func(s, r float64) {
		if s < maxSynth {
			s = maxSynth
		}
		if r < maxRec {
			r = maxRec
		}
		maxSynth, maxRec = s, r
		anchors = append(anchors, anchor{synthesized: s, recognized: r})
	}

	n := len(synthWords)
	if len(recognizedWords) < n {
		n = len(recognizedWords)
	}
	for i := 0; i < n; i++ {
		sw, rw := synthWords[i], recognizedWords[i]
		add(sw.StartTime, rw.StartTime)
		phones := len(sw.Timeline)
		if len(rw.Timeline) < phones {
			phones = len(rw.Timeline)
		}
		for p := 0; p < phones; p++ {
			add(sw.Timeline[p].StartTime, rw.Timeline[p].StartTime)
			add(sw.Timeline[p].EndTime, rw.Timeline[p].EndTime)
		}
		add(sw.EndTime, rw.EndTime)
	}

	return anchors
}

// anchorCursor projects synthesized-axis times onto the recognized axis by
// nearest-anchor lookup with a single forward cursor. One cursor serves
// one pre-order timeline traversal — timestamps arrive nondecreasing, so
// the cursor never moves backward. Cursors must not be shared across
// traversals.
type anchorCursor struct {
	anchors []anchor
	idx     int
}

// project maps t on the synthesized axis to the recognized axis: between
// the bracketing anchors, the nearer one's recognized value wins, and the
// left anchor wins an exact midpoint. Outside the table, the edge anchor
// applies; an empty table is the identity.
func (c *anchorCursor) project(t float64) float64 {
	if len(c.anchors) == 0 {
		return t
	}
	for c.idx+1 < len(c.anchors) && c.anchors[c.idx+1].synthesized < t {
		c.idx++
	}
	left := c.anchors[c.idx]
	if c.idx+1 == len(c.anchors) || t <= left.synthesized {
		return left.recognized
	}
	right := c.anchors[c.idx+1]
	if t-left.synthesized <= right.synthesized-t {
		return left.recognized
	}

	return right.recognized
}

// composeEntries rewrites every timestamp of a pre-order traversal through
// the cursor, preserving the tree shape.
func composeEntries(entries timeline.Timeline, cursor *anchorCursor) timeline.Timeline {
	if len(entries) == 0 {
		return nil
	}

	out := make(timeline.Timeline, 0, len(entries))
	for _, e := range entries {
		start := cursor.project(e.StartTime)
		children := composeEntries(e.Timeline, cursor)
		end := cursor.project(e.EndTime)
		if end < start {
			end = start
		}
		out = append(out, timeline.Entry{
			Type:      e.Type,
			Text:      e.Text,
			StartTime: start,
			EndTime:   end,
			Timeline:  children,
		})
	}

	return out
}
