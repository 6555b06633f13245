//go:build amd64 && !purego

// Package avx2 registers the wide biquad kernel used on AVX2 hosts.
package avx2

import (
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-rtdsp/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

// processBlock walks buf in fixed four-sample windows so the compiler can
// drop bounds checks inside each window.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0
	for ; i+4 <= len(buf); i += 4 {
		w := buf[i : i+4 : i+4]
		for j := range w {
			x := w[j]
			y := b0*x + d0
			d0 = b1*x - a1*y + d1
			d1 = b2*x - a2*y
			w[j] = y
		}
	}

	for ; i < len(buf); i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
