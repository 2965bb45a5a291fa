package mfcc

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	"github.com/katalvlaran/speechwarp/audio"
)

// logFloor keeps the log compression finite on empty filter bands.
const logFloor = 1e-10

// Compute extracts an MFCC sequence from the first channel of a.
// The result holds one FeatureCount-length vector per hop; frame i
// corresponds to time i·HopDuration. Tail frames that run past the end of
// the recording are zero-padded, so the sequence covers the full duration.
func Compute(a *audio.RawAudio, opts Options) ([][]float64, error) {
	if a == nil || len(a.Channels) == 0 || a.SampleCount() == 0 || a.SampleRate <= 0 {
		return nil, ErrEmptyAudio
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	samples := a.Channels[0]
	rate := a.SampleRate

	frameLen := int(math.Round(opts.WindowDuration * float64(rate)))
	if frameLen < 1 {
		frameLen = 1
	}
	hopLen := int(math.Round(opts.HopDuration * float64(rate)))
	if hopLen < 1 {
		hopLen = 1
	}

	fftSize := opts.FFTOrder
	for fftSize < frameLen {
		fftSize <<= 1
	}

	emphasized := preEmphasize(samples, opts.PreEmphasis)

	fft := fourier.NewFFT(fftSize)
	dct := fourier.NewDCT(opts.FilterbankSize)
	filters := melFilterbank(opts.FilterbankSize, fftSize, rate)

	frameCount := (len(samples) + hopLen - 1) / hopLen
	features := make([][]float64, frameCount)

	frame := make([]float64, fftSize)
	power := make([]float64, fftSize/2+1)
	energies := make([]float64, opts.FilterbankSize)
	ceps := make([]float64, opts.FilterbankSize)
	var coeffs []complex128

	for f := 0; f < frameCount; f++ {
		start := f * hopLen

		// Copy the (possibly short) frame and zero the padding.
		n := copy(frame, emphasized[start:min(start+frameLen, len(emphasized))])
		for i := n; i < fftSize; i++ {
			frame[i] = 0
		}
		window.Hann(frame[:frameLen])

		coeffs = fft.Coefficients(coeffs, frame)
		for k := range power {
			power[k] = real(coeffs[k])*real(coeffs[k]) + imag(coeffs[k])*imag(coeffs[k])
		}

		for m, filter := range filters {
			var e float64
			for _, fw := range filter {
				e += fw.weight * power[fw.bin]
			}
			if e < logFloor {
				e = logFloor
			}
			energies[m] = math.Log(e)
		}

		dct.Transform(ceps, energies)

		vec := make([]float64, opts.FeatureCount)
		copy(vec, ceps[:opts.FeatureCount])
		if opts.ZeroFirstCoefficient {
			vec[0] = 0
		}
		features[f] = vec
	}

	return features, nil
}

// preEmphasize applies the first-order high-pass y[i] = x[i] − k·x[i−1]
// across the whole channel, widening to float64 for the FFT.
func preEmphasize(samples []float32, k float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}
	out[0] = float64(samples[0])
	for i := 1; i < len(samples); i++ {
		out[i] = float64(samples[i]) - k*float64(samples[i-1])
	}

	return out
}

// binWeight is one spectrum bin's contribution to a mel filter.
type binWeight struct {
	bin    int
	weight float64
}

// melFilterbank builds count triangular filters spanning 0..rate/2,
// equally spaced on the mel scale, expressed as sparse bin weights over a
// power spectrum of fftSize/2+1 bins.
func melFilterbank(count, fftSize, rate int) [][]binWeight {
	binCount := fftSize/2 + 1
	melHigh := hzToMel(float64(rate) / 2)

	// count+2 edge points: each filter spans [edge[m], edge[m+2]] peaking at edge[m+1].
	edges := make([]float64, count+2)
	for i := range edges {
		edges[i] = melToHz(melHigh * float64(i) / float64(count+1))
	}

	binHz := float64(rate) / float64(fftSize)
	filters := make([][]binWeight, count)
	for m := 0; m < count; m++ {
		lo, center, hi := edges[m], edges[m+1], edges[m+2]
		var filter []binWeight
		for k := 0; k < binCount; k++ {
			f := float64(k) * binHz
			var w float64
			switch {
			case f <= lo || f >= hi:
				continue
			case f < center:
				w = (f - lo) / (center - lo)
			default:
				w = (hi - f) / (hi - center)
			}
			if w > 0 {
				filter = append(filter, binWeight{bin: k, weight: w})
			}
		}
		filters[m] = filter
	}

	return filters
}

// hzToMel converts a frequency in Hz to the mel scale.
func hzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// melToHz converts a mel value back to Hz.
func melToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}
