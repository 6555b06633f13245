package interp

import "github.com/cwbudde/algo-rtdsp/dsp/core"

// Mode selects an interpolation kernel.
type Mode int

const (
	Hermite Mode = iota
	Linear
	Lagrange
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Hermite:
		return "hermite"
	case Linear:
		return "linear"
	case Lagrange:
		return "lagrange"
	default:
		return "unknown"
	}
}

// At interpolates between x0 (t=0) and x1 (t=1) with the selected mode.
// Linear ignores the outer neighbours xm1 and x2.
func At[T core.Sample](m Mode, t, xm1, x0, x1, x2 T) T {
	switch m {
	case Linear:
		return Linear2(t, x0, x1)
	case Lagrange:
		return Lagrange4(t, xm1, x0, x1, x2)
	default:
		return Hermite4(t, xm1, x0, x1, x2)
	}
}

// Linear2 interpolates linearly from x0 to x1.
func Linear2[T core.Sample](t, x0, x1 T) T {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4[T core.Sample](t, xm1, x0, x1, x2 T) T {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}

// Lagrange4 computes third-order Lagrange interpolation over the points at
// positions -1, 0, 1, 2, evaluated at t in [0,1].
func Lagrange4[T core.Sample](t, xm1, x0, x1, x2 T) T {
	tm1 := t - 1
	tm2 := t - 2
	tp1 := t + 1

	return -t*tm1*tm2/6*xm1 +
		tp1*tm1*tm2/2*x0 -
		tp1*t*tm2/2*x1 +
		tp1*t*tm1/6*x2
}
