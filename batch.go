package twed

import "math"

// BatchTWED — one reference series against k equal-length targets.
//
// Description:
//
//	BatchTWED runs the pairwise recurrence in lockstep across the whole
//	batch: every DP cell widens from a scalar to a length-k vector and
//	the minimum over the three candidates is taken per element.  The
//	deleteA transition depends only on the reference series, so its
//	cost is computed once per outer step and shared by all k targets;
//	buffer allocation and sentinel setup are likewise paid once per
//	call instead of once per target.  Semantics are unchanged: the p-th
//	output equals TWED(ref, batch[p]) in TwoRows mode, bit for bit.
//
// Layout:
//
//	Two flat planes of n·k float64 addressed by the parity of i; cell j
//	of a plane is the contiguous k-vector [j·k, (j+1)·k).  The cells at
//	j = 0 form the sentinel column and are reset to +∞ at the top of
//	every outer iteration, exactly as in the two-row pairwise sweep.
//
// Complexity:
//
//	Time   = O(n²·k)
//	Memory = O(n·k)
//
// Errors:
//   - ErrNegativeNu  — opts.Nu < 0.
//   - ErrEmptySeries — the reference or any target has length 0.
//   - ErrEmptyBatch  — the batch holds no series.
//   - ErrBatchShape  — a target length differs from the reference.
//
// Each target may carry its own timestamps; time terms are evaluated
// per target.  opts.Strict and opts.Memory do not apply here: the
// equal-length constraint is always enforced and the two-plane rolling
// buffer is the batch engine.
func BatchTWED(ref Series, batch []Series, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	cm, err := NewCostModel(o.Lambda, o.Nu)
	if err != nil {
		return nil, err
	}

	n := ref.Len()
	if n == 0 {
		return nil, ErrEmptySeries
	}
	k := len(batch)
	if k == 0 {
		return nil, ErrEmptyBatch
	}
	for p := range batch {
		switch {
		case batch[p].Len() == 0:
			return nil, ErrEmptySeries
		case batch[p].Len() != n:
			return nil, ErrBatchShape
		}
	}

	inf := math.Inf(1)

	// Plane row 0 of the conceptual matrix: +∞ in every cell but the
	// origin vector [0, k), which stays 0 for all targets.
	planes := [2][]float64{make([]float64, n*k), make([]float64, n*k)}
	for c := k; c < n*k; c++ {
		planes[0][c] = inf
	}
	for p := 0; p < k; p++ {
		planes[1][p] = inf // column-0 sentinel of the first written plane
	}

	var deleteA, deleteB, match float64
	for i := 1; i < n; i++ {
		curr, prev := planes[i%2], planes[(i-1)%2]
		for p := 0; p < k; p++ {
			curr[p] = inf // re-establish the sentinel column
		}

		// Reference-side terms, shared across the whole batch.
		aGap := cm.Dist(ref.values[i-1], ref.values[i]) + cm.Nu*(ref.Time(i)-ref.Time(i-1)) + cm.Lambda
		tri, tri1 := ref.Time(i), ref.Time(i-1)
		vri, vri1 := ref.values[i], ref.values[i-1]

		for j := 1; j < n; j++ {
			base := j * k
			for p := 0; p < k; p++ {
				t := &batch[p]
				tbj, tbj1 := t.Time(j), t.Time(j-1)

				deleteA = prev[base+p] + aGap
				deleteB = curr[base-k+p] + cm.Dist(t.values[j-1], t.values[j]) +
					cm.Nu*(tbj-tbj1) + cm.Lambda
				match = prev[base-k+p] + cm.Dist(vri, t.values[j]) + cm.Dist(vri1, t.values[j-1]) +
					cm.Nu*(math.Abs(tri-tbj)+math.Abs(tri1-tbj1))
				curr[base+p] = min3(deleteA, deleteB, match)
			}
		}
	}

	// Extract the final cost vector: cell n−1 of the last active plane.
	out := make([]float64, k)
	copy(out, planes[(n-1)%2][(n-1)*k:])

	return out, nil
}
