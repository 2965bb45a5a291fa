package align

import (
	"fmt"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/dtw"
	"github.com/katalvlaran/speechwarp/mfcc"
	"github.com/katalvlaran/speechwarp/timeline"
)

// phoneMfccOptions is the geometry for word-level phone placement: the
// finest profile, so phone boundaries resolve at 5 ms.
func phoneMfccOptions() mfcc.Options {
	opts, _ := GranularityXHigh.mfccOptions()

	return opts
}

// InterpolatePhoneTimelines attaches phone timings to sourceTimeline words
// by linear scaling: each reference word's phones are stretched into the
// matching source word's interval in proportion to their offsets.
//
// Words pair by index; source words beyond the reference timeline are kept
// without phones. A reference word of zero duration contributes a zero
// scale factor, collapsing its phones onto the source word start — never
// NaN or ±Inf.
func InterpolatePhoneTimelines(sourceTimeline, referenceTimeline timeline.Timeline) timeline.Timeline {
	out := make(timeline.Timeline, 0, len(sourceTimeline))
	for i, srcWord := range sourceTimeline {
		word := timeline.Entry{
			Type:      srcWord.Type,
			Text:      srcWord.Text,
			StartTime: srcWord.StartTime,
			EndTime:   srcWord.EndTime,
		}
		if i >= len(referenceTimeline) {
			out = append(out, word)
			continue
		}

		refWord := referenceTimeline[i]
		var scale float64
		if refWord.Duration() > 0 {
			scale = srcWord.Duration() / refWord.Duration()
		}
		for _, p := range refWord.Timeline {
			word.Timeline = append(word.Timeline, timeline.Entry{
				Type:      timeline.EntryTypePhone,
				Text:      p.Text,
				StartTime: srcWord.StartTime + (p.StartTime-refWord.StartTime)*scale,
				EndTime:   srcWord.StartTime + (p.EndTime-refWord.StartTime)*scale,
			})
		}
		out = append(out, word)
	}

	return out
}

// AlignPhoneTimelines attaches phone timings to sourceWordTimeline words
// by per-word DTW: for each word pair it aligns the source-audio feature
// slice covering the source word against the reference-audio slice
// covering the reference word, then maps each reference phone boundary
// through the compacted warp path into the source word's interval.
//
// windowDuration is converted to a band half-width in frames; per-word
// slices are short, so a generous value (tens of seconds) is effectively
// unbounded. Empty slices clamp to one frame.
func AlignPhoneTimelines(sourceAudio *audio.RawAudio, sourceWordTimeline timeline.Timeline,
	referenceAudio *audio.RawAudio, referenceTimeline timeline.Timeline, windowDuration float64) (timeline.Timeline, error) {
	mopts := phoneMfccOptions()
	fps := mopts.FramesPerSecond()

	srcFrames, err := mfcc.Compute(sourceAudio, mopts)
	if err != nil {
		return nil, fmt.Errorf("align: extracting source features: %w", err)
	}
	refFrames, err := mfcc.Compute(referenceAudio, mopts)
	if err != nil {
		return nil, fmt.Errorf("align: extracting reference features: %w", err)
	}

	window := int(windowDuration * fps)
	if window < 1 {
		window = 1
	}

	out := make(timeline.Timeline, 0, len(sourceWordTimeline))
	for i, srcWord := range sourceWordTimeline {
		word := timeline.Entry{
			Type:      srcWord.Type,
			Text:      srcWord.Text,
			StartTime: srcWord.StartTime,
			EndTime:   srcWord.EndTime,
		}
		if i >= len(referenceTimeline) {
			out = append(out, word)
			continue
		}
		refWord := referenceTimeline[i]

		srcSlice := frameSlice(srcFrames, srcWord.StartTime, srcWord.EndTime, fps)
		refSlice := frameSlice(refFrames, refWord.StartTime, refWord.EndTime, fps)

		dopts := dtw.DefaultOptions()
		dopts.Window = window
		path, err := dtw.Align(refSlice, srcSlice, dopts)
		if err != nil {
			return nil, err
		}
		compacted := path.Compact()

		for _, p := range refWord.Timeline {
			refStart := int((p.StartTime - refWord.StartTime) * fps)
			refEnd := int((p.EndTime - refWord.StartTime) * fps)
			start := srcWord.StartTime + float64(compacted.MapFrame(refStart, dtw.MapFirst))/fps
			end := srcWord.StartTime + float64(compacted.MapFrame(refEnd, dtw.MapLast))/fps
			if end > srcWord.EndTime {
				end = srcWord.EndTime
			}
			if end <= start {
				end = start + 1/fps
				if end > srcWord.EndTime {
					end = srcWord.EndTime
				}
			}
			word.Timeline = append(word.Timeline, timeline.Entry{
				Type:      timeline.EntryTypePhone,
				Text:      p.Text,
				StartTime: start,
				EndTime:   end,
			})
		}
		out = append(out, word)
	}

	return out, nil
}

// frameSlice returns the feature frames covering [startTime, endTime),
// clamped into the sequence and to at least one frame.
func frameSlice(frames [][]float64, startTime, endTime, fps float64) [][]float64 {
	lo := int(startTime * fps)
	if lo < 0 {
		lo = 0
	}
	if lo > len(frames)-1 {
		lo = len(frames) - 1
	}
	hi := int(endTime * fps)
	if hi > len(frames) {
		hi = len(frames)
	}
	if hi <= lo {
		hi = lo + 1
	}

	return frames[lo:hi]
}
