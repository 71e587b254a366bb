package twed

import (
	"fmt"
	"math"
)

// TWED — Time-Warped Edit Distance (Marteau, 2009).
//
// Description:
//
//	TWED aligns a reference series A (length n) against a target series
//	B (length m) using three operations per cell: delete the head of A,
//	delete the head of B, or match both heads.  A deletion pays the
//	value gap to the previous sample of the same series, the ν-weighted
//	time gap, and the constant penalty λ.  A match pays both head value
//	gaps plus the ν-weighted absolute time gaps of the current and the
//	previous sample pair.
//
// Algorithm Outline:
//  1. Let n = a.Len(), m = b.Len().  Conceptual n×m matrix D with
//     D[0][0] = 0 and the rest of row 0 / column 0 fixed to +∞.
//  2. For i = 1..n−1, j = 1..m−1:
//     deleteA = D[i-1][j]   + d(A[i-1],A[i]) + ν·(tA[i]−tA[i-1]) + λ
//     deleteB = D[i][j-1]   + d(B[j-1],B[j]) + ν·(tB[j]−tB[j-1]) + λ
//     match   = D[i-1][j-1] + d(A[i],B[j]) + d(A[i-1],B[j-1])
//     + ν·(|tA[i]−tB[j]| + |tA[i-1]−tB[j-1]|)
//     D[i][j] = min(deleteA, deleteB, match)
//  3. distance = D[n−1][m−1].
//
// Memory Modes:
//   - TwoRows    — two physical rows addressed by the parity of i; the
//     column-0 cell of the row being rewritten is reset to +∞ at the
//     top of every outer iteration, which restores the sentinel column
//     the full matrix keeps implicitly.  Memory: O(m).  Default.
//   - FullMatrix — materialize D.  Memory: O(n·m).  Reference mode;
//     both modes produce the same result bit for bit.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m) (TwoRows) or O(n·m) (FullMatrix)
//
// Errors:
//   - ErrNegativeNu     — opts.Nu < 0.
//   - ErrEmptySeries    — either series has length 0.
//   - ErrLengthMismatch — opts.Strict and n ≠ m.
//   - ErrBadMemoryMode  — opts.Memory outside the declared enum.
//
// When n < m each of the n−1 outer steps sweeps the longer inner
// dimension, so the sweep is cheapest with the longer series as the
// reference; with opts.Verbose a non-strict call prints an advisory
// note about it.  The note never changes the computed distance.
//
// TWED computes the distance between a and b.  A nil opts means
// DefaultOptions().
//
// Example:
//
//	opts := twed.DefaultOptions()
//	dist, err := twed.TWED(a, b, &opts)
func TWED(a, b Series, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Validate parameters first: a bad cost model fails before any
	// shape inspection or DP work.
	cm, err := NewCostModel(o.Lambda, o.Nu)
	if err != nil {
		return 0, err
	}

	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return 0, ErrEmptySeries
	}
	if o.Strict && n != m {
		return 0, ErrLengthMismatch
	}
	switch o.Memory {
	case TwoRows, FullMatrix:
	default:
		return 0, ErrBadMemoryMode
	}

	// Advisory only: the result is identical with or without it.
	if o.Verbose && n < m {
		fmt.Printf("twed: advisory: reference length %d < target length %d; "+
			"the sweep is cheapest with the longer series as the reference\n", n, m)
	}

	if o.Memory == FullMatrix {
		return fullMatrixSweep(a, b, cm), nil
	}

	return twoRowsSweep(a, b, cm), nil
}

// twoRowsSweep runs the recurrence over two physical rows addressed by
// the parity of the outer index i.  Invariant: before the inner sweep
// of logical row i, the recycled row's column-0 cell is reset to +∞;
// without that reset the buffer would leak a stale cost from logical
// row i−2 into the sentinel column.
func twoRowsSweep(a, b Series, cm CostModel) float64 {
	n, m := a.Len(), b.Len()
	inf := math.Inf(1)

	// Row 0 of the conceptual matrix: +∞ everywhere but the origin.
	dp := [2][]float64{make([]float64, m), make([]float64, m)}
	for j := 1; j < m; j++ {
		dp[0][j] = inf
	}
	dp[1][0] = inf // column-0 sentinel of the first written row
	// dp[0][0] stays 0: the origin cell.

	var (
		deleteA float64 // cost of consuming A[i] against the gap to A[i-1]
		deleteB float64 // cost of consuming B[j] against the gap to B[j-1]
		match   float64 // cost of consuming A[i] and B[j] together
	)
	for i := 1; i < n; i++ {
		curr, prev := i%2, (i-1)%2
		dp[curr][0] = inf // re-establish the sentinel column

		// The deleteA transition depends only on the reference series,
		// so its cost is constant across the whole inner sweep.
		aGap := cm.Dist(a.values[i-1], a.values[i]) + cm.Nu*(a.Time(i)-a.Time(i-1)) + cm.Lambda
		tai, tai1 := a.Time(i), a.Time(i-1)
		vai, vai1 := a.values[i], a.values[i-1]

		for j := 1; j < m; j++ {
			deleteA = dp[prev][j] + aGap
			deleteB = dp[curr][j-1] + cm.Dist(b.values[j-1], b.values[j]) +
				cm.Nu*(b.Time(j)-b.Time(j-1)) + cm.Lambda
			match = dp[prev][j-1] + cm.Dist(vai, b.values[j]) + cm.Dist(vai1, b.values[j-1]) +
				cm.Nu*(math.Abs(tai-b.Time(j))+math.Abs(tai1-b.Time(j-1)))
			dp[curr][j] = min3(deleteA, deleteB, match)
		}
	}

	return dp[(n-1)%2][m-1]
}

// fullMatrixSweep materializes the whole n×m matrix with a one-time
// sentinel initialization of row 0 and column 0.  It is the
// straightforward implementation the rolling buffer is validated
// against; both share the exact candidate expressions so their results
// are bit-identical.
func fullMatrixSweep(a, b Series, cm CostModel) float64 {
	n, m := a.Len(), b.Len()
	inf := math.Inf(1)

	dp := make([][]float64, n)
	for i := range dp {
		dp[i] = make([]float64, m)
	}
	for j := 1; j < m; j++ {
		dp[0][j] = inf
	}
	for i := 1; i < n; i++ {
		dp[i][0] = inf
	}

	var deleteA, deleteB, match float64
	for i := 1; i < n; i++ {
		aGap := cm.Dist(a.values[i-1], a.values[i]) + cm.Nu*(a.Time(i)-a.Time(i-1)) + cm.Lambda
		tai, tai1 := a.Time(i), a.Time(i-1)
		vai, vai1 := a.values[i], a.values[i-1]

		for j := 1; j < m; j++ {
			deleteA = dp[i-1][j] + aGap
			deleteB = dp[i][j-1] + cm.Dist(b.values[j-1], b.values[j]) +
				cm.Nu*(b.Time(j)-b.Time(j-1)) + cm.Lambda
			match = dp[i-1][j-1] + cm.Dist(vai, b.values[j]) + cm.Dist(vai1, b.values[j-1]) +
				cm.Nu*(math.Abs(tai-b.Time(j))+math.Abs(tai1-b.Time(j-1)))
			dp[i][j] = min3(deleteA, deleteB, match)
		}
	}

	return dp[n-1][m-1]
}
