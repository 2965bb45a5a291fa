package dtw

import "math"

// Align — banded Dynamic Time Warping between two feature sequences.
//
// Description:
//
//	Align finds the minimum-cost monotone correspondence between ref and
//	src under a band constraint, so a labeled position on the reference
//	axis can be projected onto the source axis.
//
// Algorithm Outline:
//  1. Let R = len(ref), S = len(src). For each reference row i compute the
//     in-band column range [lo(i), hi(i)]:
//     Centers present: lo = Centers[i]−Window, hi = Centers[i]+Window.
//     Otherwise:       lo = round(i·S/R)−Window, hi = round(i·S/R)+Window.
//     Both clamped to [0, S−1]. Row 0 always includes column 0 and row
//     R−1 always includes column S−1 so the path anchors at the corners.
//  2. Row 0 seeds left-to-right (left predecessor only); the first in-band
//     column of later rows has no left predecessor.
//  3. Recurrence for in-band (i,j):
//     D[i][j] = cost(ref[i], src[j]) + min(D[i−1][j], D[i][j−1], D[i−1][j−1])
//     Out-of-band predecessors read as +∞. If all three are +∞ (a band
//     seam), the predecessor is clamped to the nearest in-band cell of the
//     previous row — the corridor widens locally instead of failing.
//  4. Backtrack from (R−1, S−1) to (0,0) choosing the predecessor with the
//     minimum cumulative cost; ties break diagonal, then up, then left.
//     Reverse to obtain the path.
//
// Storage is ragged: row i allocates exactly hi(i)−lo(i)+1 float64 cells.
// Call EstimateBandedMatrixBytes before Align when the caller wants to
// warn or abort on large allocations.
//
// Complexity:
//
//	Time   = O(R·Window)
//	Memory = O(R·Window)
//
// Errors:
//   - ErrEmptySequence     — R = 0 or S = 0.
//   - ErrDimensionMismatch — uneven vector widths, or len(Centers) ≠ R.
//   - ErrOptionViolation   — Window < 1.
func Align(ref, src [][]float64, opts Options) (Path, error) {
	r, s := len(ref), len(src)
	if r == 0 || s == 0 {
		return nil, ErrEmptySequence
	}
	if opts.Window < 1 {
		return nil, ErrOptionViolation
	}
	if opts.Centers != nil && len(opts.Centers) != r {
		return nil, ErrDimensionMismatch
	}
	width := len(ref[0])
	for _, v := range ref {
		if len(v) != width {
			return nil, ErrDimensionMismatch
		}
	}
	for _, v := range src {
		if len(v) != width {
			return nil, ErrDimensionMismatch
		}
	}
	costFn := opts.CostFn
	if costFn == nil {
		costFn = EuclideanCost
	}

	lo, hi := bandBounds(r, s, opts)

	inf := math.Inf(1)
	// read returns the cumulative cost at (row with bounds rowLo..) column j,
	// or +∞ outside the stored band.
	read := func(row []float64, rowLo, j int) float64 {
		if j < rowLo || j >= rowLo+len(row) {
			return inf
		}

		return row[j-rowLo]
	}

	rows := make([][]float64, r)

	// Row 0: directional seeding, left predecessors only.
	row0 := make([]float64, hi[0]-lo[0]+1)
	for j := lo[0]; j <= hi[0]; j++ {
		cost := costFn(ref[0], src[j])
		if j == lo[0] {
			row0[0] = cost
			continue
		}
		row0[j-lo[0]] = cost + row0[j-1-lo[0]]
	}
	rows[0] = row0

	for i := 1; i < r; i++ {
		row := make([]float64, hi[i]-lo[i]+1)
		prevRow, prevLo := rows[i-1], lo[i-1]
		for j := lo[i]; j <= hi[i]; j++ {
			cost := costFn(ref[i], src[j])
			up := read(prevRow, prevLo, j)
			diag := read(prevRow, prevLo, j-1)
			left := inf
			if j > lo[i] {
				left = row[j-1-lo[i]]
			}
			best := min3(diag, up, left)
			if math.IsInf(best, 1) {
				// Band seam: clamp the predecessor into the previous row.
				best = prevRow[clampInt(j, prevLo, prevLo+len(prevRow)-1)-prevLo]
			}
			row[j-lo[i]] = cost + best
		}
		rows[i] = row
	}

	return backtrack(rows, lo, r, s), nil
}

// bandBounds computes per-row in-band column ranges, clamped to the source
// axis, with the corner cells (0,0) and (R−1,S−1) forced into the band.
func bandBounds(r, s int, opts Options) (lo, hi []int) {
	lo = make([]int, r)
	hi = make([]int, r)
	for i := 0; i < r; i++ {
		var c int
		if opts.Centers != nil {
			c = clampInt(opts.Centers[i], 0, s-1)
		} else {
			c = int(math.Round(float64(i) * float64(s) / float64(r)))
		}
		l := c - opts.Window
		if l < 0 {
			l = 0
		}
		h := c
		if h > s-1-opts.Window {
			h = s - 1
		} else {
			h = c + opts.Window
		}
		lo[i], hi[i] = clampInt(l, 0, s-1), clampInt(h, 0, s-1)
	}
	// Anchor the corners.
	lo[0] = 0
	if hi[r-1] < s-1 {
		hi[r-1] = s - 1
	}

	return lo, hi
}

// backtrack walks the cumulative-cost rows from (r−1, s−1) back to (0,0),
// breaking ties diagonal, then up, then left, and returns the forward path.
func backtrack(rows [][]float64, lo []int, r, s int) Path {
	inf := math.Inf(1)
	read := func(row []float64, rowLo, j int) float64 {
		if j < rowLo || j >= rowLo+len(row) {
			return inf
		}

		return row[j-rowLo]
	}

	rev := make(Path, 0, r+s)
	i, j := r-1, s-1
	for {
		rev = append(rev, Coord{Source: i, Dest: j})
		if i == 0 && j == 0 {
			break
		}
		if i == 0 {
			j--
			continue
		}
		if j == 0 {
			i--
			continue
		}

		prevRow, prevLo := rows[i-1], lo[i-1]
		diag := read(prevRow, prevLo, j-1)
		up := read(prevRow, prevLo, j)
		left := inf
		if j-1 >= lo[i] {
			left = read(rows[i], lo[i], j-1)
		}

		if math.IsInf(diag, 1) && math.IsInf(up, 1) && math.IsInf(left, 1) {
			// Band seam: step up into the nearest in-band cell.
			i--
			j = clampInt(j, prevLo, prevLo+len(prevRow)-1)
			continue
		}

		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}

	// Reverse in-place to obtain (0,0) … (r−1,s−1).
	for l, h := 0, len(rev)-1; l < h; l, h = l+1, h-1 {
		rev[l], rev[h] = rev[h], rev[l]
	}

	return rev
}

// EstimateBandedMatrixBytes reports the cost-matrix footprint of a banded
// alignment with the given geometry: R rows of 2W+1 float64 cells. Callers
// may warn or abort before Align performs the allocation.
func EstimateBandedMatrixBytes(r, s, window int) int {
	const cellBytes = 8

	return r * (2*window + 1) * cellBytes
}
