// Package seriesconv provides two-way adapters between twed.Series and
// common external representations, so callers do not have to hand-roll
// conversion loops at the API boundary.
//
// ✨ Adapters:
//   - FromVecDense / TimedFromVecDense — gonum vectors in
//   - ToVecDense — samples out as a fresh gonum vector
//   - FromTimePoints — wall-clock time.Time samples onto the float64
//     time axis (absolute Unix seconds, so converted series share one
//     axis and their elasticity terms stay comparable)
//
// All adapters copy: a converted Series never aliases gonum storage,
// and ToVecDense never exposes the Series backing slice.  Validation
// is delegated to the twed constructors, so the sentinel errors are
// the familiar ones (twed.ErrEmptySeries, twed.ErrTimestampCount,
// twed.ErrTimestampOrder).
package seriesconv
