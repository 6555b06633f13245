package generic

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad/internal/arch/registry"
)

func reference(c registry.Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	for i, x := range buf {
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		buf[i] = y
	}
	return d0, d1
}

func TestProcessBlockMatchesReference(t *testing.T) {
	c := registry.Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.25}

	for _, n := range []int{0, 1, 2, 3, 7, 64} {
		got := make([]float64, n)
		want := make([]float64, n)
		for i := range n {
			v := math.Sin(float64(i) * 0.3)
			got[i] = v
			want[i] = v
		}

		gd0, gd1 := ProcessBlock(c, 0.1, -0.05, got)
		wd0, wd1 := reference(c, 0.1, -0.05, want)

		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Fatalf("n=%d sample %d: got %g want %g", n, i, got[i], want[i])
			}
		}
		if math.Abs(gd0-wd0) > 1e-12 || math.Abs(gd1-wd1) > 1e-12 {
			t.Fatalf("n=%d state mismatch: got (%g,%g) want (%g,%g)", n, gd0, gd1, wd0, wd1)
		}
	}
}
