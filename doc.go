// Package twed computes the Time-Warped Edit Distance (TWED) between
// numeric time series, with optional per-sample timestamps, a rolling
// two-row memory optimization and a batched many-vs-one engine.
//
// 🚀 What is TWED?
//
//	TWED (Marteau, 2009) measures dissimilarity between two time series
//	by combining edit operations (delete in either series, or match)
//	with a temporal elasticity penalty, so value gaps and time gaps both
//	carry cost.  It is widely used in:
//	  • Time-series clustering & nearest-neighbour search
//	  • Signal / sensor-trace comparison under uneven sampling
//	  • Pattern retrieval tolerant to local time-shifts
//
// ✨ Key features:
//   - TwoRows mode: rolling two-row buffer, O(m) memory (default)
//   - FullMatrix mode: explicit n×m matrix, the validation reference
//   - BatchTWED: one reference vs k equal-length targets in lockstep,
//     sharing the reference-side transition cost across the whole batch
//   - optional strictly increasing timestamps per series (default 1..n)
//   - strict mode to enforce equal lengths (ErrLengthMismatch)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/twed"
//
//	a, _ := twed.NewSeries([]float64{10, 20, 30, 40, 50})
//	b, _ := twed.NewSeries([]float64{15, 25, 35, 45, 55})
//
//	opts := twed.DefaultOptions() // λ=0.001, ν=0.5, TwoRows
//	dist, err := twed.TWED(a, b, &opts)
//
// Performance:
//
//   - Time:   O(n·m) pairwise; O(n²·k) batched (n = reference length)
//   - Memory: O(m) (TwoRows) or O(n·m) (FullMatrix); O(n·k) batched
//
// Length-1 series are governed by the boundary sentinels: two length-1
// series have distance 0; a length-1 series against a longer one yields
// +Inf, since the sentinel row/column is never overwritten.  +Inf is a
// representable result, not an error.
//
// See example_test.go for runnable scenarios and bench_test.go for the
// TwoRows/FullMatrix and batch-vs-sequential comparisons.
package twed
