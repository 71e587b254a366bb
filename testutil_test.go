// Package twed_test provides lightweight helpers shared across the
// *_test.go files in this package: canonical fixtures and tolerances.
package twed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twed"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the strict tolerance for values that are exact up to a
	// couple of float64 roundings (symmetry, re-associated sums).
	epsTiny = 1e-12

	// epsLoose is a relaxed tolerance for accumulated costs over longer
	// sweeps, where rounding grows with the path length.
	epsLoose = 1e-9

	// seedDet is the deterministic seed for generated fixtures.
	seedDet = int64(42)
)

// -----------------------------------------------------------------------------
// Fixture helpers
// -----------------------------------------------------------------------------

// mustSeries builds a Series from values and fails the test on error.
func mustSeries(t *testing.T, values ...float64) twed.Series {
	t.Helper()
	s, err := twed.NewSeries(values)
	require.NoError(t, err, "NewSeries must accept non-empty values")

	return s
}

// mustTimedSeries builds a timestamped Series and fails the test on error.
func mustTimedSeries(t *testing.T, values, times []float64) twed.Series {
	t.Helper()
	s, err := twed.NewTimedSeries(values, times)
	require.NoError(t, err, "NewTimedSeries must accept valid input")

	return s
}

// ramp returns 0, 1, …, n−1 as float64 samples.
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}
