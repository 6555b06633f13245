package design

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

// DefaultQ is the Butterworth Q used when a caller passes an invalid Q.
const DefaultQ = 1 / math.Sqrt2

// rbj holds the shared intermediate terms of the Audio EQ Cookbook
// formulas for one (frequency, Q, sample rate) triple.
type rbj struct {
	cw, sw float64
	alpha  float64
}

func newRBJ(freq, q, sampleRate float64) (rbj, bool) {
	w0, ok := angularFrequency(freq, sampleRate)
	if !ok {
		return rbj{}, false
	}

	if !(q > 0) || math.IsInf(q, 0) {
		q = DefaultQ
	}

	sw := math.Sin(w0)

	return rbj{cw: math.Cos(w0), sw: sw, alpha: sw / (2 * q)}, true
}

// Lowpass designs a second-order lowpass with cutoff freq.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	b1 := 1 - p.cw

	return normalize(b1/2, b1, b1/2, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Highpass designs a second-order highpass with cutoff freq.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	b1 := 1 + p.cw

	return normalize(b1/2, -b1, b1/2, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Bandpass designs a bandpass whose peak gain equals Q.
func Bandpass(freq, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(p.sw/2, 0, -p.sw/2, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// BandpassPeak designs a bandpass with 0 dB gain at freq.
func BandpassPeak(freq, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(p.alpha, 0, -p.alpha, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Bandstop designs a notch centered at freq.
func Bandstop(freq, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(1, -2*p.cw, 1, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Allpass designs a unity-magnitude section whose phase passes -pi at freq.
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(1-p.alpha, -2*p.cw, 1+p.alpha, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Peak designs a peaking EQ with gainDB at freq.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok || !finite(gainDB) {
		return biquad.Coefficients{}
	}

	a := math.Pow(10, gainDB/40)

	return normalize(1+p.alpha*a, -2*p.cw, 1-p.alpha*a, 1+p.alpha/a, -2*p.cw, 1-p.alpha/a)
}

// LowShelf designs a shelf applying gainDB below freq.
func LowShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok || !finite(gainDB) {
		return biquad.Coefficients{}
	}

	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * p.alpha
	ap, am := a+1, a-1

	return normalize(
		a*(ap-am*p.cw+beta),
		2*a*(am-ap*p.cw),
		a*(ap-am*p.cw-beta),
		ap+am*p.cw+beta,
		-2*(am+ap*p.cw),
		ap+am*p.cw-beta,
	)
}

// HighShelf designs a shelf applying gainDB above freq.
func HighShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	p, ok := newRBJ(freq, q, sampleRate)
	if !ok || !finite(gainDB) {
		return biquad.Coefficients{}
	}

	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * p.alpha
	ap, am := a+1, a-1

	return normalize(
		a*(ap+am*p.cw+beta),
		-2*a*(am+ap*p.cw),
		a*(ap+am*p.cw-beta),
		ap-am*p.cw+beta,
		2*(am-ap*p.cw),
		ap-am*p.cw-beta,
	)
}

func angularFrequency(freq, sampleRate float64) (float64, bool) {
	if !finite(sampleRate) || sampleRate <= 0 {
		return 0, false
	}

	if !finite(freq) || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || !finite(a0) {
		return biquad.Coefficients{}
	}

	inv := 1 / a0

	return biquad.Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}
}
