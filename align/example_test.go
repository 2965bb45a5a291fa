package align_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/speechwarp/align"
	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/timeline"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlignUsingDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-word reference recording and a source rendition of the same
//	words. One medium-granularity pass with a window covering the whole
//	recording is enough for short clips; long recordings should add a
//	coarse first pass (e.g. low → high) so the fine pass can run inside
//	a narrow band.
//
// Use case:
//
//	Subtitle retiming: the reference timeline came from a TTS rendition
//	of the transcript, and the output timeline carries the same labels
//	on the real recording.
func ExampleAlignUsingDTW() {
	rate := 16000
	tone := func(freq, seconds float64) []float32 {
		out := make([]float32, int(seconds*float64(rate)))
		for i := range out {
			out[i] = float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		}

		return out
	}
	reference := &audio.RawAudio{
		Channels:   [][]float32{append(tone(440, 1.0), tone(880, 1.0)...)},
		SampleRate: rate,
	}

	refTimeline := timeline.Timeline{
		{Type: timeline.EntryTypeWord, Text: "hello", StartTime: 0, EndTime: 1},
		{Type: timeline.EntryTypeWord, Text: "world", StartTime: 1, EndTime: 2},
	}

	// Aligning a recording against itself returns the input timing to
	// within one frame (20 ms at medium granularity).
	out, err := align.AlignUsingDTW(context.Background(), reference, reference, refTimeline,
		[]align.Granularity{align.GranularityMedium}, []float64{2.0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, e := range out {
		fmt.Printf("%s %.2f–%.2f\n", e.Text, e.StartTime, e.EndTime)
	}
}
