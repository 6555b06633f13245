// Package design computes biquad coefficients for the common audio EQ
// shapes and Butterworth cascades.
//
// Every designer returns normalized [biquad.Coefficients]. Invalid
// arguments (non-positive sample rate, a frequency outside (0, Nyquist),
// NaN or Inf) yield the zero Coefficients, which filter to silence. A
// non-positive or non-finite Q falls back to 1/sqrt(2).
package design
