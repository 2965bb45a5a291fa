// Package mfcc extracts Mel-Frequency Cepstral Coefficient sequences from
// raw PCM, producing the frame-indexed feature vectors the DTW aligner
// consumes.
//
// What
//
//   - Compute turns a RawAudio channel into an ordered [][]float64 sequence:
//     frame i describes the audio at time i·HopDuration, so the sequence has
//     FramesPerSecond() = 1/HopDuration temporal resolution.
//   - The pipeline per frame: pre-emphasis → Hann window → zero-padded real
//     FFT → power spectrum → triangular mel filterbank → log compression →
//     cosine transform → first FeatureCount coefficients.
//   - ZeroFirstCoefficient clears c₀ after the transform, removing overall
//     energy from the feature so alignment is loudness-invariant.
//
// Why
//
//   - Warping raw waveforms is hopeless; MFCCs summarize spectral envelope
//     per frame, which is what actually lines up between two renditions of
//     the same speech.
//
// Complexity (n = samples, F = frames, B = FFT size, M = filters)
//
//   - Time:   O(F·B log B + F·M)
//   - Memory: O(F·FeatureCount) for the output, O(B) scratch.
//
// Errors
//
//   - ErrEmptyAudio: no channels or no samples.
//   - ErrOptionViolation: non-positive window/hop, FFT order not a power of
//     two, or FeatureCount exceeding FilterbankSize.
//
// The extractor is deterministic and pure: same audio and options, same
// features.
package mfcc
