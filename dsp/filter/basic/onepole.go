package basic

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
)

// OnePole computes y[n] = b0*x[n] - a1*y[n-1].
type OnePole[T core.Sample] struct {
	b0, a1 T
	y1     T
}

var _ core.Processor[float64] = (*OnePole[float64])(nil)

// NewOnePole returns a one-pole filter with the pole at p, normalized to
// unity gain at DC (p > 0) or Nyquist (p <= 0).
func NewOnePole[T core.Sample](p float64) *OnePole[T] {
	f := &OnePole[T]{b0: 1}
	f.SetPole(p)

	return f
}

// SetPole moves the pole and renormalizes b0. Poles outside (-1, 1) are
// ignored.
func (f *OnePole[T]) SetPole(p float64) {
	if !(p > -1 && p < 1) {
		return
	}

	f.b0 = T(1 - math.Abs(p))
	f.a1 = T(-p)
}

// SetCoefficients sets b0 and a1 directly.
func (f *OnePole[T]) SetCoefficients(b0, a1 T) {
	f.b0, f.a1 = b0, a1
}

// Coefficients returns b0 and a1.
func (f *OnePole[T]) Coefficients() (b0, a1 T) {
	return f.b0, f.a1
}

// Process filters one sample.
func (f *OnePole[T]) Process(x T) T {
	f.y1 = f.b0*x - f.a1*f.y1
	return f.y1
}

// LastOut returns the most recent output.
func (f *OnePole[T]) LastOut() T { return f.y1 }

// Clear zeroes the feedback memory.
func (f *OnePole[T]) Clear() { f.y1 = 0 }
