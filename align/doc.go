// Package align is the forced-alignment orchestration layer: it drives
// MFCC extraction and banded DTW across multiple refinement passes, then
// remaps a labeled reference timeline onto the source recording.
//
// What
//
//   - AlignUsingDTW — direct alignment: reference audio + labeled timeline
//     against a source recording of the same content.
//   - AlignUsingDTWWithRecognition — indirect alignment: the source says
//     something else, a recognizer transcribed it, and a synthesized
//     intermediate bridges the two via an anchor table.
//   - InterpolatePhoneTimelines / AlignPhoneTimelines — attach phone-level
//     timings to recognized words, by linear scaling or by per-word DTW.
//   - CreateAlignmentReference — synthesize a normalized 16 kHz mono
//     reference and word-level timeline from a transcript.
//
// Why multi-pass
//
//	Coarse granularities cheaply locate the global alignment corridor;
//	fine granularities refine inside a narrow band centered on it. Memory
//	and compute for the fine passes become linear in audio length rather
//	than quadratic.
//
// Scheduling
//
//	The driver is single-threaded cooperative: passes and steps run
//	sequentially, suspending only on the supplied context. Cancellation is
//	honored between passes; a cancelled alignment yields no partial
//	result. All inputs are read-only after construction; the DTW cost
//	matrix is local to one pass and freed at pass end.
//
// Logging
//
//	The driver is silent by default (zerolog.Nop()). WithLogger opts into
//	pass progress at Debug, including the estimated banded-matrix size
//	before each allocation, and a Warn advisory when the first-pass window
//	is narrower than 20% of the source duration.
//
// Errors
//
//   - ErrInvariantViolation — mismatched argument lengths, empty pass
//     lists, negative timestamps in the input timeline.
//   - ErrUnknownGranularity, ErrUnsupportedPhoneAlignmentMethod — unknown
//     selector tags.
//   - External collaborator failures surface unchanged (wrapped with %w);
//     the driver performs no retries and holds no partial state.
//
// The only soft fallback: an empty recognition timeline in indirect mode
// returns the reference timeline linearly rescaled to the source duration.
package align
