// Package dtw computes banded Dynamic Time Warping alignments between
// vector sequences (MFCC frames), returning the warp path and its
// compacted per-reference-frame form.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  Here it matches the feature
//	frames of two recordings of the same speech, so labeled intervals on
//	one recording can be projected onto the other.
//
// ✨ Key features:
//   - banded cost matrix: fixed Sakoe–Chiba diagonal band, or a per-row
//     band centered on a prior pass's result (iterative refinement)
//   - ragged per-row storage: only in-band cells are ever allocated
//   - injectable frame cost (default Euclidean distance over vectors)
//   - Path.Compact(): per-reference-frame [First, Last] source ranges
//   - EstimateBandedMatrixBytes: size the matrix before allocating it
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 200                  // band half-width in frames
//	path, err := dtw.Align(ref, src, opts)
//	cp := path.Compact()
//	j := cp.MapFrame(i, dtw.MapFirst)  // reference frame i → source frame j
//
// Performance (R×S frames, band half-width W):
//
//   - Time:   O(R·W)
//   - Memory: O(R·W) — full R·S is never materialized
//
// Errors:
//   - ErrEmptySequence     — either input has no frames.
//   - ErrDimensionMismatch — uneven vector widths, or Centers length ≠ R.
//   - ErrOptionViolation   — band half-width below 1.
//
// A band too narrow to connect the corners never fails: predecessors are
// clamped to the nearest in-band cell of the previous row, locally widening
// the corridor.
package dtw
