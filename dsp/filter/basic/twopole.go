package basic

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
)

// TwoPole computes y[n] = b0*x[n] - a1*y[n-1] - a2*y[n-2].
type TwoPole[T core.Sample] struct {
	b0, a1, a2 T
	y1, y2     T
}

var _ core.Processor[float64] = (*TwoPole[float64])(nil)

// NewTwoPole returns a pass-through two-pole filter.
func NewTwoPole[T core.Sample]() *TwoPole[T] {
	return &TwoPole[T]{b0: 1}
}

// SetResonance places a complex pole pair at radius r and angle
// 2*pi*freq/sampleRate. With normalize set, b0 is chosen for unity gain
// at freq. Requests with r outside [0, 1) or freq outside [0, Nyquist]
// are ignored.
func (f *TwoPole[T]) SetResonance(freq, r, sampleRate float64, normalize bool) {
	if !(r >= 0 && r < 1) || !(sampleRate > 0) || !(freq >= 0 && freq <= sampleRate/2) {
		return
	}

	theta := 2 * math.Pi * freq / sampleRate
	a2 := r * r
	f.a1 = T(-2 * r * math.Cos(theta))
	f.a2 = T(a2)

	if normalize {
		// |1 + a1 e^-jw + a2 e^-2jw| at w == theta.
		re := 1 - r + (a2-r)*math.Cos(2*theta)
		im := (a2 - r) * math.Sin(2*theta)
		f.b0 = T(math.Hypot(re, im))
	}
}

// SetCoefficients sets b0, a1 and a2 directly.
func (f *TwoPole[T]) SetCoefficients(b0, a1, a2 T) {
	f.b0, f.a1, f.a2 = b0, a1, a2
}

// Coefficients returns b0, a1 and a2.
func (f *TwoPole[T]) Coefficients() (b0, a1, a2 T) {
	return f.b0, f.a1, f.a2
}

// Process filters one sample.
func (f *TwoPole[T]) Process(x T) T {
	y := f.b0*x - f.a1*f.y1 - f.a2*f.y2
	f.y2 = f.y1
	f.y1 = y

	return y
}

// LastOut returns the most recent output.
func (f *TwoPole[T]) LastOut() T { return f.y1 }

// Clear zeroes the feedback memory.
func (f *TwoPole[T]) Clear() {
	f.y1, f.y2 = 0, 0
}
