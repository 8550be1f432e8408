// Package sampler draws measurement outcomes from an amplitude vector.
//
// Sample applies the Born rule: basis state i is observed with probability
// |a_i|². Probabilities are renormalised by their sum before drawing, so
// accumulated floating-point drift in a long circuit does not bias the
// counts; a sum further than the tolerance from 1 is reported as
// ErrInvalidState instead.
//
// Outcomes are keyed by their big-endian bit label ("010" means qubit 1 was
// measured as 1). Sampling never mutates the input vector.
//
// Determinism: pass WithSeed or WithRand to reproduce a run exactly. With
// neither, a time-seeded source is used.
package sampler
