package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the roots of z^2 + A1 z + A2.
func (c Coefficients) Poles() [2]complex128 {
	return roots2(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 z^2 + B1 z + B2. A section with B0 == 0
// reports at most one finite zero; the other slot is 0.
func (c Coefficients) Zeros() [2]complex128 {
	return roots2(c.B0, c.B1, c.B2)
}

// IsStable reports whether both poles lie strictly inside the unit
// circle.
func (c Coefficients) IsStable() bool {
	// Stability triangle for z^2 + A1 z + A2.
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// IsStable reports whether every section is stable.
func (c *Chain[T]) IsStable() bool {
	for i := range c.sections {
		if !c.sections[i].coeffs.IsStable() {
			return false
		}
	}

	return true
}

// Poles returns the poles of every section, two per section.
func (c *Chain[T]) Poles() []complex128 {
	out := make([]complex128, 0, 2*len(c.sections))
	for i := range c.sections {
		p := c.sections[i].coeffs.Poles()
		out = append(out, p[0], p[1])
	}

	return out
}

func roots2(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	mb := complex(-b, 0)
	den := complex(2*a, 0)

	return [2]complex128{(mb + sq) / den, (mb - sq) / den}
}
