package gain

import (
	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ApplyGainBlock scales every sample of buf by ratio in place. float64
// blocks run through the vectorized kernel.
func ApplyGainBlock[T core.Sample](buf []T, ratio T) {
	if ratio == 1 || len(buf) == 0 {
		return
	}

	if f, ok := any(buf).([]float64); ok {
		vecmath.ScaleBlockInPlace(f, float64(ratio))
		return
	}

	for i := range buf {
		buf[i] *= ratio
	}
}

// ApplyRamp scales buf in place by a gain moving linearly from `from` at
// the first sample to `to` at the last. scratch holds the gain curve; it is
// grown only when shorter than buf, and the slice to pass on the next call
// is returned.
func ApplyRamp(buf, scratch []float64, from, to float64) []float64 {
	n := len(buf)
	switch n {
	case 0:
		return scratch
	case 1:
		buf[0] *= from
		return scratch
	}

	if from == to {
		ApplyGainBlock(buf, from)
		return scratch
	}

	ramp := core.EnsureLen(scratch, n)
	step := (to - from) / float64(n-1)

	for i := range ramp {
		ramp[i] = from + step*float64(i)
	}

	ramp[n-1] = to
	vecmath.MulBlockInPlace(buf, ramp)

	return ramp
}
