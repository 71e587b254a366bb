// Package twed defines the options, memory modes and sentinel errors
// shared by the TWED engines.
package twed

import "errors"

// Documented default cost parameters.  DefaultOptions uses them; they
// are exported so callers can reference the library defaults by name
// instead of repeating literals.
const (
	// DefaultLambda is the default per-deletion penalty λ.
	DefaultLambda = 0.001

	// DefaultNu is the default temporal elasticity weight ν.
	DefaultNu = 0.5
)

// Sentinel errors returned by constructors and engine entry points.
// Every one of them is raised during validation, before any DP work.
var (
	// ErrEmptySeries indicates a series with no samples (length 0).
	ErrEmptySeries = errors.New("twed: series must contain at least one sample")

	// ErrTimestampCount indicates len(times) != len(values).
	ErrTimestampCount = errors.New("twed: timestamps must match the sample count")

	// ErrTimestampOrder indicates timestamps that are not strictly increasing.
	ErrTimestampOrder = errors.New("twed: timestamps must be strictly increasing")

	// ErrNegativeNu indicates an elasticity weight ν < 0.
	ErrNegativeNu = errors.New("twed: elasticity nu must be non-negative")

	// ErrLengthMismatch indicates a strict-mode call with unequal lengths.
	ErrLengthMismatch = errors.New("twed: strict mode requires equal-length series")

	// ErrEmptyBatch indicates a batch call with no target series.
	ErrEmptyBatch = errors.New("twed: batch must contain at least one series")

	// ErrBatchShape indicates a target whose length differs from the reference.
	ErrBatchShape = errors.New("twed: batch series must all match the reference length")

	// ErrBadMemoryMode indicates a MemoryMode outside the declared enum.
	ErrBadMemoryMode = errors.New("twed: unknown memory mode")
)

// MemoryMode controls how TWED stores its DP state.
//
//   - TwoRows    — keep only the current and previous row, addressed by
//     the parity of the outer index.  Memory: O(m).  The default.
//   - FullMatrix — materialize the entire n×m matrix.  Memory: O(n·m).
//     The straightforward reference mode; TwoRows must match it exactly.
type MemoryMode int

const (
	// TwoRows mode: rolling two-row buffer, O(m) memory.
	TwoRows MemoryMode = iota

	// FullMatrix mode: explicit n×m matrix, O(n·m) memory.
	FullMatrix
)

// Options configures the TWED engines.
//
// Fields:
//   - Lambda  — per-deletion penalty λ.  Not sign-checked: negative
//     penalties are accepted and left to the caller's judgement.
//   - Nu      — temporal elasticity weight ν; must be ≥ 0, otherwise
//     the call fails with ErrNegativeNu before any computation.
//   - Strict  — pairwise only: fail with ErrLengthMismatch when the two
//     series lengths differ.
//   - Memory  — pairwise DP storage strategy (TwoRows or FullMatrix).
//     BatchTWED always uses its two-plane rolling buffer and ignores
//     this field.
//   - Verbose — print an advisory note to stdout when the non-strict
//     pairwise call sees len(a) < len(b).  Never changes the result.
//
// Example:
//
//	opts := twed.DefaultOptions()
//	opts.Strict = true
//
//	dist, err := twed.TWED(a, b, &opts)
type Options struct {
	Lambda  float64
	Nu      float64
	Strict  bool
	Memory  MemoryMode
	Verbose bool
}

// DefaultOptions returns the documented defaults: λ = DefaultLambda,
// ν = DefaultNu, TwoRows memory, non-strict, quiet.
func DefaultOptions() Options {
	return Options{Lambda: DefaultLambda, Nu: DefaultNu, Memory: TwoRows}
}
