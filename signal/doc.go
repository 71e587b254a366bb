// Package signal provides small deterministic 1-D series generators
// for tests, demos and benchmarks.
//
// ✨ Generators:
//   - Pulse — rectangular pulse train (period 8 samples, 50% duty)
//   - Chirp — linear frequency sweep from 0.02 to 0.25 cycles/sample
//   - Shift — edge-padded displacement of an existing series
//   - WithNoise — additive Gaussian noise on a copy of a series
//
// Every generator is pure: the same inputs (including the seed) always
// produce the same slice, no global state is touched, and invalid
// input yields nil, never a panic.  Pulse and Chirp carry a mild
// default noise floor so that distance fixtures do not degenerate into
// exact repeats; the seed pins it.
package signal
