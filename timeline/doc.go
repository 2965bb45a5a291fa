// Package timeline models labeled time-interval trees: segments,
// sentences, words, tokens and phones, each a half-open interval in
// seconds with an optional nested child timeline.
//
// What
//
//   - Entry is one labeled interval; Timeline is an ordered forest of them.
//   - Validate checks the structural invariants every producer and
//     consumer in the module relies on: StartTime ≤ EndTime, siblings
//     sorted by StartTime, children bounded by their parent.
//   - Rescale multiplies every timestamp by a constant factor.
//   - FlattenToWords collapses clause/segment/token nesting into a flat
//     word-level timeline whose only children are phones.
//
// Why
//
//   - Forced alignment is, in the end, a transformation of one of these
//     trees: the aligner reads a reference tree and emits the same tree
//     with every interval retimed onto the source recording.
//
// Complexity: every operation is a single O(total entries) walk.
//
// Errors
//
//   - ErrInvalidInterval: negative times or StartTime > EndTime.
//   - ErrUnsortedSiblings: siblings out of StartTime order.
//   - ErrChildOutOfBounds: a child interval escaping its parent.
//
// Timelines are strict trees of values; operations return new slices and
// never mutate their input.
package timeline
