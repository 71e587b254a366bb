package twed

import "math"

// CostModel bundles the TWED cost parameters: the per-deletion penalty
// λ and the temporal elasticity weight ν.  It is an immutable value and
// safe to share across any number of concurrent computations.
type CostModel struct {
	Lambda float64 // per-deletion penalty λ (no sign constraint)
	Nu     float64 // temporal elasticity ν ≥ 0
}

// NewCostModel validates (λ, ν) and returns the model.  ν < 0 fails
// with ErrNegativeNu before any computation starts; λ is deliberately
// not sign-checked.
func NewCostModel(lambda, nu float64) (CostModel, error) {
	if nu < 0 {
		return CostModel{}, ErrNegativeNu
	}

	return CostModel{Lambda: lambda, Nu: nu}, nil
}

// Dist is the pointwise distance d(x, y) = |x − y| used uniformly for
// sample-value gaps and timestamp gaps.
func (c CostModel) Dist(x, y float64) float64 {
	return math.Abs(x - y)
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
