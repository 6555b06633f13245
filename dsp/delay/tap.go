package delay

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/interp"
)

// tapIndex maps a tap offset to a buffer index. Offset 0 addresses the most
// recently written sample. Offsets are clipped to [0, MaxDelay], which keeps
// the signed intermediate within one buffer length of the valid range.
func (d *Line[T]) tapIndex(offset int) int {
	n := len(d.buffer)
	offset = min(max(offset, 0), n-1)

	i := d.writePos - offset - 1
	if i < 0 {
		i += n
	}

	return i
}

// TapOut returns the sample written offset steps before the most recent one.
// It does not depend on, or change, the primary delay.
func (d *Line[T]) TapOut(offset int) T {
	return d.buffer[d.tapIndex(offset)]
}

// TapIn overwrites the sample at offset with v.
func (d *Line[T]) TapIn(v T, offset int) {
	d.buffer[d.tapIndex(offset)] = v
}

// AddTo adds v to the sample at offset and returns the new value.
func (d *Line[T]) AddTo(v T, offset int) T {
	i := d.tapIndex(offset)
	d.buffer[i] += v

	return d.buffer[i]
}

// TapOutFrac reads between taps at a fractional offset using the line's
// interpolation mode. The offset is clipped so that all neighbours used by
// the kernel lie inside the stored history.
func (d *Line[T]) TapOutFrac(offset float64) T {
	hi := float64(d.MaxDelay() - 2)
	if hi < 1 {
		return d.TapOut(int(math.Round(offset)))
	}

	offset = min(max(offset, 0), hi)

	p := int(offset)
	t := T(offset - float64(p))

	// Interpolates along the offset axis, from offset p towards p+1.
	xm1 := d.TapOut(max(p-1, 0))
	x0 := d.TapOut(p)
	x1 := d.TapOut(p + 1)
	x2 := d.TapOut(p + 2)

	return interp.At(d.mode, t, xm1, x0, x1, x2)
}

// SetInterpolation changes the kernel used by TapOutFrac.
func (d *Line[T]) SetInterpolation(m interp.Mode) {
	d.mode = m
}
