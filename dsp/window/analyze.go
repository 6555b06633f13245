package window

import "math"

// Analysis holds measured spectral properties of a window. Frequencies
// are in bins of the window length.
type Analysis struct {
	CoherentGain float64
	ENBW         float64
	// Bandwidth3dB is the two-sided half-power main lobe width.
	Bandwidth3dB float64
	// HighestSidelobedB is relative to the DC response.
	HighestSidelobedB float64
	FirstMinimumBins  float64
	// ScallopLossdB is the response half a bin off centre.
	ScallopLossdB float64
}

// oversample is the zero-padding factor of the coarse spectrum scan.
const oversample = 8

// Analyze measures coeffs. A coarse scan runs on an oversampled FFT and
// each feature is refined on the exact DTFT. Empty or zero-sum windows
// yield the zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}
	}

	mag, err := MagnitudeResponse(coeffs, oversample*n)
	if err != nil {
		return Analysis{}
	}

	nf := float64(n)
	fftSize := float64(2 * (len(mag) - 1))
	dc := powerAt(coeffs, 0)

	var sum float64
	for _, c := range coeffs {
		sum += c
	}

	kMin := firstMinimumBin(mag)
	fMin := goldenSection(coeffs, (float64(kMin)-1)/fftSize, (float64(kMin)+1)/fftSize, false)

	a := Analysis{
		CoherentGain:      sum / nf,
		ENBW:              enbw,
		Bandwidth3dB:      2 * halfPowerFrequency(coeffs, dc, fMin) * nf,
		FirstMinimumBins:  fMin * nf,
		ScallopLossdB:     10 * math.Log10(powerAt(coeffs, 0.5/nf)/dc),
		HighestSidelobedB: math.Inf(-1),
	}

	kPeak := kMin
	for k := kMin + 1; k < len(mag); k++ {
		if mag[k] > mag[kPeak] {
			kPeak = k
		}
	}

	if kPeak > kMin {
		f := goldenSection(coeffs, (float64(kPeak)-1)/fftSize, (float64(kPeak)+1)/fftSize, true)
		a.HighestSidelobedB = 10 * math.Log10(powerAt(coeffs, f)/dc)
	}

	return a
}

// firstMinimumBin returns the first local minimum of mag once the
// response has fallen below -10 dB of DC. Flat-top windows keep a wide
// plateau, so earlier dips are ignored.
func firstMinimumBin(mag []float64) int {
	threshold := mag[0] * math.Sqrt(0.1)

	for k := 1; k < len(mag); k++ {
		if mag[k-1] < threshold && mag[k] > mag[k-1] {
			return k - 1
		}
	}

	return len(mag) - 1
}

// halfPowerFrequency bisects for the normalized frequency in [0, hi]
// where the power response falls to half of dc.
func halfPowerFrequency(coeffs []float64, dc, hi float64) float64 {
	lo := 0.0
	for range 60 {
		mid := (lo + hi) / 2
		if powerAt(coeffs, mid) > dc/2 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// goldenSection locates the minimum (or maximum) of the power response
// on [a, b], clipped to [0, 0.5].
func goldenSection(coeffs []float64, a, b float64, maximize bool) float64 {
	const phi = 0.6180339887498949

	a, b = max(a, 0), min(b, 0.5)

	f := func(x float64) float64 {
		p := powerAt(coeffs, x)
		if maximize {
			return -p
		}

		return p
	}

	c := b - phi*(b-a)
	d := a + phi*(b-a)
	fc, fd := f(c), f(d)

	for range 80 {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - phi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + phi*(b-a)
			fd = f(d)
		}
	}

	return (a + b) / 2
}

// powerAt returns |W(f)|^2 of the DTFT at normalized frequency f.
func powerAt(coeffs []float64, f float64) float64 {
	w := 2 * math.Pi * f

	var re, im float64
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}

	return re*re + im*im
}
