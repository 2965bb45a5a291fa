package audio

import "math"

// rmsDbfs returns the RMS level of samples in dBFS.
// An all-zero (or empty) slice yields −Inf.
func rmsDbfs(samples []float32) float64 {
	if len(samples) == 0 {
		return math.Inf(-1)
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	rms := math.Sqrt(sum / float64(len(samples)))
	if rms == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(rms)
}

// StartingSilentSampleCount returns the length, in samples, of the silent
// prefix of samples. The scan advances one analysis frame at a time and
// stops at the first frame whose RMS level exceeds thresholdDb.
//
// Complexity: O(n) time, O(1) memory.
func StartingSilentSampleCount(samples []float32, thresholdDb float64) int {
	var offset int
	for offset < len(samples) {
		end := offset + silenceAnalysisFrameLength
		if end > len(samples) {
			end = len(samples)
		}
		if rmsDbfs(samples[offset:end]) > thresholdDb {
			return offset
		}
		offset = end
	}

	return len(samples)
}

// EndingSilentSampleCount returns the length, in samples, of the silent
// suffix of samples, scanning analysis frames backwards from the end.
//
// Complexity: O(n) time, O(1) memory.
func EndingSilentSampleCount(samples []float32, thresholdDb float64) int {
	var trailing int
	end := len(samples)
	for end > 0 {
		start := end - silenceAnalysisFrameLength
		if start < 0 {
			start = 0
		}
		if rmsDbfs(samples[start:end]) > thresholdDb {
			return trailing
		}
		trailing += end - start
		end = start
	}

	return len(samples)
}
