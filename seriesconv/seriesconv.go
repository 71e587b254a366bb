package seriesconv

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/twed"
)

// FromVecDense builds a Series over the vector's elements with implicit
// unit timestamps.  A nil or empty vector fails with twed.ErrEmptySeries.
func FromVecDense(v *mat.VecDense) (twed.Series, error) {
	if v == nil {
		return twed.Series{}, twed.ErrEmptySeries
	}

	vals := make([]float64, v.Len())
	for i := range vals {
		vals[i] = v.AtVec(i)
	}

	return twed.NewSeries(vals)
}

// TimedFromVecDense builds a Series from a value vector and a timestamp
// vector.  The usual constructor rules apply: equal lengths
// (twed.ErrTimestampCount) and strictly increasing timestamps
// (twed.ErrTimestampOrder).
func TimedFromVecDense(values, times *mat.VecDense) (twed.Series, error) {
	if values == nil || times == nil {
		return twed.Series{}, twed.ErrEmptySeries
	}

	vals := make([]float64, values.Len())
	for i := range vals {
		vals[i] = values.AtVec(i)
	}
	ts := make([]float64, times.Len())
	for i := range ts {
		ts[i] = times.AtVec(i)
	}

	return twed.NewTimedSeries(vals, ts)
}

// ToVecDense copies the samples of s into a fresh gonum vector.
// Returns nil for a zero-valued (empty) Series, since gonum vectors
// cannot be zero-length.
func ToVecDense(s twed.Series) *mat.VecDense {
	if s.Len() == 0 {
		return nil
	}

	return mat.NewVecDense(s.Len(), s.Values())
}

// FromTimePoints builds a timed Series from wall-clock sample points.
// Timestamps are mapped to absolute Unix seconds as float64, so every
// series converted this way lives on one shared time axis.  The points
// must be strictly increasing (twed.ErrTimestampOrder) and match the
// value count (twed.ErrTimestampCount).
func FromTimePoints(ts []time.Time, values []float64) (twed.Series, error) {
	if len(values) == 0 {
		return twed.Series{}, twed.ErrEmptySeries
	}
	if len(ts) != len(values) {
		return twed.Series{}, twed.ErrTimestampCount
	}

	secs := make([]float64, len(ts))
	for i, p := range ts {
		secs[i] = float64(p.UnixNano()) / float64(time.Second)
	}

	return twed.NewTimedSeries(values, secs)
}
