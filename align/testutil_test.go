package align_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/timeline"
	"github.com/stretchr/testify/require"
)

const testRate = 16000

// toneLadder builds a mono recording of consecutive sine tones, one per
// frequency, each segmentDuration seconds long. Distinct tones give the
// aligner real temporal structure to lock onto.
func toneLadder(freqs []float64, segmentDuration float64, rate int) *audio.RawAudio {
	segLen := int(segmentDuration * float64(rate))
	samples := make([]float32, 0, segLen*len(freqs))
	for _, f := range freqs {
		for i := 0; i < segLen; i++ {
			samples = append(samples, float32(0.5*math.Sin(2*math.Pi*f*float64(i)/float64(rate))))
		}
	}

	return &audio.RawAudio{Channels: [][]float32{samples}, SampleRate: rate}
}

// ladderFreqs is a ten-tone scale used by the alignment scenarios.
var ladderFreqs = []float64{220, 330, 440, 550, 660, 880, 990, 1100, 1320, 1540}

// word builds a word entry with optional phone children.
func word(text string, start, end float64, phones ...timeline.Entry) timeline.Entry {
	return timeline.Entry{
		Type:      timeline.EntryTypeWord,
		Text:      text,
		StartTime: start,
		EndTime:   end,
		Timeline:  phones,
	}
}

// phone builds a phone entry.
func phone(text string, start, end float64) timeline.Entry {
	return timeline.Entry{Type: timeline.EntryTypePhone, Text: text, StartTime: start, EndTime: end}
}

// requireTimelinePreserved asserts the output invariants every mapped
// timeline must satisfy, at every depth: start ≥ 0, start ≤ end, siblings
// sorted by start. It does not compare children with their parent.
func requireTimelinePreserved(t *testing.T, tl timeline.Timeline) {
	t.Helper()
	var prevStart float64
	for i, e := range tl {
		require.GreaterOrEqual(t, e.StartTime, 0.0, "entry %q must not start before zero", e.Text)
		require.LessOrEqual(t, e.StartTime, e.EndTime, "entry %q must have start ≤ end", e.Text)
		if i > 0 {
			require.GreaterOrEqual(t, e.StartTime, prevStart, "siblings must be sorted by start time")
		}
		prevStart = e.StartTime
		requireTimelinePreserved(t, e.Timeline)
	}
}
