package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns H(e^jw) at freqHz for the given sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// MagnitudeSquared returns |H(f)|^2. It squares the evaluated response
// rather than using the expanded cosine polynomial, which cancels to about
// 1e-12 at deep notches.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)

	return real(h)*real(h) + imag(h)*imag(h)
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns arg H(f) in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response returns the product of the section responses and the gain.
func (c *Chain[T]) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].coeffs.Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascade magnitude in dB.
func (c *Chain[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// ImpulseResponse returns the first n samples of h[n]. The running state
// is restored afterwards.
func (s *Section[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	saved, last := s.State(), s.last
	s.Clear()

	ir := make([]T, n)
	ir[0] = 1
	s.ProcessBlock(ir)

	s.SetState(saved)
	s.last = last

	return ir
}

// ImpulseResponse returns the first n samples of the cascade's h[n]. The
// running state is restored afterwards.
func (c *Chain[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	saved, last := c.State(), c.last
	c.Clear()

	ir := make([]T, n)
	ir[0] = 1
	c.ProcessBlock(ir)

	c.SetState(saved)
	c.last = last

	return ir
}
