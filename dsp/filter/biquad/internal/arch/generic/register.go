// Package generic registers the portable biquad kernel.
package generic

import (
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-rtdsp/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: ProcessBlock,
	})
}

// ProcessBlock runs the DF2T recurrence two samples per iteration.
func ProcessBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	n := len(buf)
	i := 0

	for ; i+1 < n; i += 2 {
		x := buf[i]
		y := c.B0*x + d0
		s0 := c.B1*x - c.A1*y + d1
		s1 := c.B2*x - c.A2*y
		buf[i] = y

		x = buf[i+1]
		y = c.B0*x + s0
		d0 = c.B1*x - c.A1*y + s1
		d1 = c.B2*x - c.A2*y
		buf[i+1] = y
	}

	if i < n {
		x := buf[i]
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		buf[i] = y
	}

	return d0, d1
}
