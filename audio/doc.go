// Package audio provides the raw PCM model and the small set of signal
// utilities the alignment core needs: duration, silence scanning, linear
// resampling, mono downmix with peak normalization, and WAV decode/encode.
//
// What
//
//   - RawAudio wraps multi-channel float32 PCM in [−1, 1] plus a sample rate.
//   - StartingSilentSampleCount / EndingSilentSampleCount scan a channel for
//     silent prefixes/suffixes using an RMS-in-dBFS threshold over short
//     analysis frames (−40 dBFS default).
//   - ResampleLinear / ResampleTo16k change the sample rate by linear
//     interpolation; DownmixMonoNormalize folds channels to mono and
//     normalizes to unit peak.
//   - DecodeWAV / EncodeWAV round-trip RawAudio through RIFF/WAVE containers
//     (github.com/go-audio/wav).
//
// Why
//
//   - The timeline mapper trims mapped intervals at silence boundaries.
//   - Alignment references are normalized 16 kHz mono by contract.
//
// Complexity (n = samples, c = channels)
//
//   - Silence scans:          O(n) time, O(1) memory.
//   - Resample/downmix:       O(n·c) time, O(n) memory for the new buffer.
//
// Errors
//
//   - ErrEmptyAudio: an operation received audio with no channels or samples.
//   - ErrInvalidWAV: the WAV payload could not be decoded.
//
// All values are immutable once built; no utility mutates its input. Every
// utility returns a new buffer, except ResampleLinear (and ResampleTo16k),
// which return the input itself when its rate already matches.
package audio
