package align

import (
	"fmt"

	"github.com/katalvlaran/speechwarp/audio"
	"github.com/katalvlaran/speechwarp/dtw"
	"github.com/katalvlaran/speechwarp/timeline"
)

// mapTimeline projects every reference timeline entry through the
// compacted warp path onto source time.
//
// Interval ends map through First — not Last — of their reference frame:
// the warp path may dwell on a reference frame across a long source
// stretch (e.g. trailing silence), and taking the range start keeps ends
// tight; the silence trim below compensates in the other direction. This
// asymmetry is deliberate — do not "fix" it without retuning the trim
// threshold.
//
// The mapper is pure with respect to the compacted path and the audio
// buffer, and performs no smoothing across sibling entries: children are
// mapped independently and may exceed a parent whose edges were trimmed.
func mapTimeline(entries timeline.Timeline, compacted dtw.CompactedPath, fps float64, source *audio.RawAudio) (timeline.Timeline, error) {
	samplesPerFrame := int(float64(source.SampleRate) / fps)
	channel := source.Channels[0]

	return mapEntries(entries, compacted, fps, samplesPerFrame, source.SampleRate, channel)
}

func mapEntries(entries timeline.Timeline, compacted dtw.CompactedPath, fps float64,
	samplesPerFrame, sampleRate int, channel []float32) (timeline.Timeline, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	out := make(timeline.Timeline, 0, len(entries))
	for _, e := range entries {
		if e.StartTime < 0 || e.EndTime < e.StartTime {
			return nil, fmt.Errorf("%w: entry %q has interval [%f, %f]",
				ErrInvariantViolation, e.Text, e.StartTime, e.EndTime)
		}

		refStart := int(e.StartTime * fps)
		refEnd := int(e.EndTime * fps)
		sampleStart := compacted.MapFrame(refStart, dtw.MapFirst) * samplesPerFrame
		sampleEnd := compacted.MapFrame(refEnd, dtw.MapFirst) * samplesPerFrame
		if sampleEnd > len(channel) {
			sampleEnd = len(channel)
		}
		if sampleEnd < sampleStart {
			sampleEnd = sampleStart
		}

		sampleStart, sampleEnd = trimSilence(channel, sampleStart, sampleEnd)

		children, err := mapEntries(e.Timeline, compacted, fps, samplesPerFrame, sampleRate, channel)
		if err != nil {
			return nil, err
		}

		out = append(out, timeline.Entry{
			Type:      e.Type,
			Text:      e.Text,
			StartTime: float64(sampleStart) / float64(sampleRate),
			EndTime:   float64(sampleEnd) / float64(sampleRate),
			Timeline:  children,
		})
	}

	return out, nil
}

// trimSilence advances start past the leading silent prefix of the mapped
// segment and retracts end before its trailing silent suffix, at the −40
// dBFS default threshold. End never retracts past start.
func trimSilence(channel []float32, start, end int) (int, int) {
	segment := channel[start:end]
	lead := audio.StartingSilentSampleCount(segment, audio.DefaultSilenceThresholdDb)
	trail := audio.EndingSilentSampleCount(segment, audio.DefaultSilenceThresholdDb)

	trimmedStart := start + lead
	trimmedEnd := end - trail
	if trimmedEnd < trimmedStart {
		trimmedEnd = trimmedStart
	}

	return trimmedStart, trimmedEnd
}
