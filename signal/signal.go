package signal

import (
	"math"
	"math/rand"
)

// Generator defaults, shared across the package.
const (
	defAmp     = 1.0   // waveform amplitude
	defSigma   = 0.02  // mild Gaussian noise floor for Pulse/Chirp
	defFreq    = 0.125 // pulse base frequency (cycles/sample); period 8
	defDuty    = 0.5   // fraction of the pulse period spent high
	defChirpF0 = 0.02  // chirp start frequency (cycles/sample)
	defChirpF1 = 0.25  // chirp end frequency (cycles/sample)

	tau = 2.0 * math.Pi
)

// Pulse returns a length-n rectangular pulse train: amplitude 1, period
// 8 samples, 50% duty cycle, plus the default noise floor pinned by
// seed.  Returns nil when n < 1.
func Pulse(n int, seed int64) []float64 {
	if n < 1 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		frac := math.Mod(float64(i)*defFreq, 1)
		if frac < defDuty {
			out[i] = defAmp
		}
		out[i] += defSigma * rng.NormFloat64()
	}

	return out
}

// Chirp returns a length-n linear chirp sweeping from 0.02 to 0.25
// cycles/sample at amplitude 1, plus the default noise floor pinned by
// seed.  The phase accumulates across samples, so the sweep stays
// continuous.  Returns nil when n < 1.
func Chirp(n int, seed int64) []float64 {
	if n < 1 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	theta := 0.0
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi := defChirpF0 + (defChirpF1-defChirpF0)*t
		theta += tau * fi
		out[i] = defAmp*math.Sin(theta) + defSigma*rng.NormFloat64()
	}

	return out
}

// Shift returns a copy of src displaced by lag samples: positive lag
// moves content later in time, negative earlier.  Vacated positions
// repeat the nearest edge value.  Returns nil when src is empty.
func Shift(src []float64, lag int) []float64 {
	n := len(src)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		j := i - lag
		if j < 0 {
			j = 0
		} else if j >= n {
			j = n - 1
		}
		out[i] = src[j]
	}

	return out
}

// WithNoise returns a copy of src with additive Gaussian noise of the
// given sigma, pinned by seed.  sigma == 0 yields a plain copy; a
// negative sigma or empty src returns nil.
func WithNoise(src []float64, sigma float64, seed int64) []float64 {
	if len(src) == 0 || sigma < 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = v + sigma*rng.NormFloat64()
	}

	return out
}
