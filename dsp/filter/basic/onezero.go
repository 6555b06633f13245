package basic

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
)

// OneZero computes y[n] = b0*x[n] + b1*x[n-1].
type OneZero[T core.Sample] struct {
	b0, b1 T
	x1     T
	last   T
}

var _ core.Processor[float64] = (*OneZero[float64])(nil)

// NewOneZero returns a one-zero filter with the zero at z, normalized so
// the peak gain is one.
func NewOneZero[T core.Sample](z float64) *OneZero[T] {
	f := &OneZero[T]{b0: 1}
	f.SetZero(z)

	return f
}

// SetZero places the zero at z. Non-finite values are ignored.
func (f *OneZero[T]) SetZero(z float64) {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return
	}

	b0 := 1 / (1 + math.Abs(z))
	f.b0 = T(b0)
	f.b1 = T(-z * b0)
}

// SetCoefficients sets b0 and b1 directly.
func (f *OneZero[T]) SetCoefficients(b0, b1 T) {
	f.b0, f.b1 = b0, b1
}

// Coefficients returns b0 and b1.
func (f *OneZero[T]) Coefficients() (b0, b1 T) {
	return f.b0, f.b1
}

// Process filters one sample.
func (f *OneZero[T]) Process(x T) T {
	f.last = f.b0*x + f.b1*f.x1
	f.x1 = x

	return f.last
}

// LastOut returns the most recent output.
func (f *OneZero[T]) LastOut() T { return f.last }

// Clear zeroes the input memory and the last output.
func (f *OneZero[T]) Clear() {
	f.x1 = 0
	f.last = 0
}
