package window

import (
	"fmt"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeResponse returns |W[k]| for k in [0, size/2] from a
// zero-padded FFT of coeffs. size is raised to at least len(coeffs) and
// rounded up to a power of two.
func MagnitudeResponse(coeffs []float64, fftSize int) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoeffs
	}

	size := 1 << bits.Len(uint(max(fftSize, len(coeffs), 2)-1))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("window: fft plan of size %d: %w", size, err)
	}

	in := make([]complex128, size)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("window: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k], im[k] = real(out[k]), imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
