package design

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

// ButterworthLP returns the sections of an order-n Butterworth lowpass.
// Odd orders end with a first-order section (B2 == A2 == 0). It returns
// nil for order < 1.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, Lowpass, FirstOrderLowpass)
}

// ButterworthHP returns the sections of an order-n Butterworth highpass.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, Highpass, FirstOrderHighpass)
}

func butterworth(
	freq float64, order int, sampleRate float64,
	second func(freq, q, sampleRate float64) biquad.Coefficients,
	first func(freq, sampleRate float64) biquad.Coefficients,
) []biquad.Coefficients {
	if order < 1 {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, ButterworthQ(order, i), sampleRate))
	}

	if order%2 == 1 {
		sections = append(sections, first(freq, sampleRate))
	}

	return sections
}

// ButterworthQ returns the Q of pole pair index of an order-n Butterworth
// prototype.
func ButterworthQ(order, index int) float64 {
	s := math.Sin(math.Pi * float64(2*index+1) / float64(2*order))
	if s <= 0 {
		return DefaultQ
	}

	return 1 / (2 * s)
}

// FirstOrderLowpass designs a bilinear one-pole lowpass.
func FirstOrderLowpass(freq, sampleRate float64) biquad.Coefficients {
	k, ok := prewarp(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(k, k, 0, 1+k, k-1, 0)
}

// FirstOrderHighpass designs a bilinear one-pole highpass.
func FirstOrderHighpass(freq, sampleRate float64) biquad.Coefficients {
	k, ok := prewarp(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(1, -1, 0, 1+k, k-1, 0)
}

func prewarp(freq, sampleRate float64) (float64, bool) {
	w0, ok := angularFrequency(freq, sampleRate)
	if !ok {
		return 0, false
	}

	return math.Tan(w0 / 2), true
}
