package basic

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
)

// TwoZero computes y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2].
type TwoZero[T core.Sample] struct {
	b0, b1, b2 T
	x1, x2     T
	last       T
}

var _ core.Processor[float64] = (*TwoZero[float64])(nil)

// NewTwoZero returns a pass-through two-zero filter.
func NewTwoZero[T core.Sample]() *TwoZero[T] {
	return &TwoZero[T]{b0: 1}
}

// SetNotch places a complex zero pair at radius r and angle
// 2*pi*freq/sampleRate, scaling the coefficients so the maximum gain is
// one. Negative r, non-positive sample rates and frequencies outside
// [0, Nyquist] are ignored.
func (f *TwoZero[T]) SetNotch(freq, r, sampleRate float64) {
	if !(r >= 0) || math.IsInf(r, 0) || !(sampleRate > 0) || !(freq >= 0 && freq <= sampleRate/2) {
		return
	}

	b2 := r * r
	b1 := -2 * r * math.Cos(2*math.Pi*freq/sampleRate)

	// Peak gain is at Nyquist when b1 < 0 and at DC otherwise.
	b0 := 1 / (1 - b1 + b2)
	if b1 > 0 {
		b0 = 1 / (1 + b1 + b2)
	}

	f.b0 = T(b0)
	f.b1 = T(b1 * b0)
	f.b2 = T(b2 * b0)
}

// SetCoefficients sets b0, b1 and b2 directly.
func (f *TwoZero[T]) SetCoefficients(b0, b1, b2 T) {
	f.b0, f.b1, f.b2 = b0, b1, b2
}

// Coefficients returns b0, b1 and b2.
func (f *TwoZero[T]) Coefficients() (b0, b1, b2 T) {
	return f.b0, f.b1, f.b2
}

// Process filters one sample.
func (f *TwoZero[T]) Process(x T) T {
	f.last = f.b0*x + f.b1*f.x1 + f.b2*f.x2
	f.x2 = f.x1
	f.x1 = x

	return f.last
}

// LastOut returns the most recent output.
func (f *TwoZero[T]) LastOut() T { return f.last }

// Clear zeroes the input memory and the last output.
func (f *TwoZero[T]) Clear() {
	f.x1, f.x2 = 0, 0
	f.last = 0
}
