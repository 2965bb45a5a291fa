package audio

// ReferenceSampleRate is the sample rate alignment references are
// normalized to before feature extraction.
const ReferenceSampleRate = 16000

// ResampleLinear returns a copy of a resampled to targetRate using linear
// interpolation between neighboring samples. A matching rate returns the
// input unchanged.
//
// Complexity: O(n·c) time, O(n·c) memory for the new buffer.
func ResampleLinear(a *RawAudio, targetRate int) (*RawAudio, error) {
	if a == nil || len(a.Channels) == 0 || a.SampleCount() == 0 {
		return nil, ErrEmptyAudio
	}
	if targetRate <= 0 {
		return nil, ErrEmptyAudio
	}
	if a.SampleRate == targetRate {
		return a, nil
	}

	srcCount := a.SampleCount()
	dstCount := int(float64(srcCount) * float64(targetRate) / float64(a.SampleRate))
	if dstCount < 1 {
		dstCount = 1
	}
	ratio := float64(a.SampleRate) / float64(targetRate)

	channels := make([][]float32, len(a.Channels))
	for c, src := range a.Channels {
		dst := make([]float32, dstCount)
		for i := range dst {
			pos := float64(i) * ratio
			lo := int(pos)
			if lo >= srcCount-1 {
				dst[i] = src[srcCount-1]
				continue
			}
			frac := float32(pos - float64(lo))
			dst[i] = src[lo]*(1-frac) + src[lo+1]*frac
		}
		channels[c] = dst
	}

	return &RawAudio{Channels: channels, SampleRate: targetRate}, nil
}

// ResampleTo16k resamples a to the 16 kHz reference rate.
func ResampleTo16k(a *RawAudio) (*RawAudio, error) {
	return ResampleLinear(a, ReferenceSampleRate)
}

// DownmixMonoNormalize folds all channels into a single mono channel by
// averaging, then scales the result so the loudest sample sits at unit
// peak. Silent input stays silent (no division by a zero peak).
//
// Complexity: O(n·c) time, O(n) memory.
func DownmixMonoNormalize(a *RawAudio) (*RawAudio, error) {
	if a == nil || len(a.Channels) == 0 || a.SampleCount() == 0 {
		return nil, ErrEmptyAudio
	}

	count := a.SampleCount()
	mono := make([]float32, count)
	scale := float32(1) / float32(len(a.Channels))
	for _, ch := range a.Channels {
		for i := 0; i < count && i < len(ch); i++ {
			mono[i] += ch[i] * scale
		}
	}

	var peak float32
	for _, s := range mono {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	if peak > 0 {
		gain := 1 / peak
		for i := range mono {
			mono[i] *= gain
		}
	}

	return &RawAudio{Channels: [][]float32{mono}, SampleRate: a.SampleRate}, nil
}
