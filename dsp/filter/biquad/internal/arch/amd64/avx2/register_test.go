//go:build amd64 && !purego

package avx2

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad/internal/arch/generic"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad/internal/arch/registry"
)

func TestProcessBlockMatchesGeneric(t *testing.T) {
	c := registry.Coefficients{B0: 0.3, B1: -0.1, B2: 0.05, A1: -1.2, A2: 0.5}

	for _, n := range []int{0, 1, 3, 4, 5, 33} {
		got := make([]float64, n)
		want := make([]float64, n)
		for i := range n {
			v := math.Cos(float64(i) * 0.7)
			got[i] = v
			want[i] = v
		}

		gd0, gd1 := processBlock(c, 0, 0, got)
		wd0, wd1 := generic.ProcessBlock(c, 0, 0, want)

		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Fatalf("n=%d sample %d: got %g want %g", n, i, got[i], want[i])
			}
		}
		if math.Abs(gd0-wd0) > 1e-12 || math.Abs(gd1-wd1) > 1e-12 {
			t.Fatalf("n=%d state mismatch", n)
		}
	}
}
