package biquad

import (
	"fmt"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum returns |H[k]| for k in [0, n/2] from an n-point FFT of the
// impulse response. n is rounded up to a power of two.
func (s *Section[T]) Spectrum(n int) ([]float64, error) {
	return spectrumOf(s.ImpulseResponse, n)
}

// Spectrum returns the cascade magnitude spectrum like [Section.Spectrum].
func (c *Chain[T]) Spectrum(n int) ([]float64, error) {
	return spectrumOf(c.ImpulseResponse, n)
}

func spectrumOf[T ~float32 | ~float64](impulse func(int) []T, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("biquad: spectrum size %d too small", n)
	}

	size := 1 << bits.Len(uint(n-1))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("biquad: fft plan: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range impulse(size) {
		in[i] = complex(float64(v), 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("biquad: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
