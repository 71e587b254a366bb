package twed

// Series is an ordered, read-only sequence of float64 samples with an
// optional strictly increasing timestamp per sample.  When timestamps
// are omitted they default to 1, 2, …, Len() (unit spacing).
//
// A Series aliases the slices handed to its constructor instead of
// copying them; the caller owns the storage and must not mutate it
// while a computation using the Series is in flight.  The engines only
// ever read through a Series.
type Series struct {
	values []float64
	times  []float64 // nil → implicit 1..Len()
}

// NewSeries returns a Series over values with implicit unit timestamps
// 1, 2, …, len(values).  Fails with ErrEmptySeries when values is empty.
func NewSeries(values []float64) (Series, error) {
	if len(values) == 0 {
		return Series{}, ErrEmptySeries
	}

	return Series{values: values}, nil
}

// NewTimedSeries returns a Series over values with explicit timestamps.
// times must have the same length as values (ErrTimestampCount) and be
// strictly increasing (ErrTimestampOrder).
func NewTimedSeries(values, times []float64) (Series, error) {
	if len(values) == 0 {
		return Series{}, ErrEmptySeries
	}
	if len(times) != len(values) {
		return Series{}, ErrTimestampCount
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return Series{}, ErrTimestampOrder
		}
	}

	return Series{values: values, times: times}, nil
}

// Len returns the number of samples.  A zero-valued Series has Len 0
// and is rejected by every engine entry point with ErrEmptySeries.
func (s Series) Len() int { return len(s.values) }

// Value returns the i-th sample.
func (s Series) Value(i int) float64 { return s.values[i] }

// Time returns the timestamp of the i-th sample: times[i] when explicit
// timestamps were supplied, float64(i+1) otherwise.
func (s Series) Time(i int) float64 {
	if s.times == nil {
		return float64(i + 1)
	}

	return s.times[i]
}

// Values returns a fresh copy of the sample values.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Times returns a fresh copy of the explicit timestamps, or nil when
// the Series uses implicit unit timestamps.
func (s Series) Times() []float64 {
	if s.times == nil {
		return nil
	}
	out := make([]float64, len(s.times))
	copy(out, s.times)

	return out
}
