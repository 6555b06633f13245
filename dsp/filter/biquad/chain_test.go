package biquad

import (
	"testing"

	"github.com/cwbudde/algo-rtdsp/internal/testutil"
)

func TestChainImpulse(t *testing.T) {
	c := NewChain[float64]([]Coefficients{onePole, onePole}, WithGain(2))

	if c.NumSections() != 2 || c.Order() != 2 || c.Gain() != 2 {
		t.Fatalf("sections=%d order=%d gain=%g", c.NumSections(), c.Order(), c.Gain())
	}

	want := []float64{2, 2, 1.5, 1}
	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}

		if got := c.Process(x); got != w {
			t.Fatalf("sample %d: got %g want %g", i, got, w)
		}
	}
}

func TestChainBlockMatchesSample(t *testing.T) {
	in := testutil.DeterministicNoise(11, 1, 200)
	coeffs := []Coefficients{testCoeffs, onePole}

	ref := NewChain[float64](coeffs, WithGain(0.5))
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = ref.Process(x)
	}

	c := NewChain[float64](coeffs, WithGain(0.5))
	got := append([]float64(nil), in...)
	c.ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if c.LastOut() != got[len(got)-1] {
		t.Fatalf("LastOut = %g, want %g", c.LastOut(), got[len(got)-1])
	}
}

func TestChainEmptyIsGain(t *testing.T) {
	c := NewChain[float32](nil, WithGain(0.25))
	if got := c.Process(2); got != 0.5 {
		t.Fatalf("got %g want 0.5", got)
	}

	if c.Order() != 0 {
		t.Fatalf("order = %d", c.Order())
	}
}

func TestChainUpdateCoefficients(t *testing.T) {
	c := NewChain[float64]([]Coefficients{onePole})
	c.Process(1)

	c.UpdateCoefficients([]Coefficients{onePole, Passthrough()})
	if c.NumSections() != 2 {
		t.Fatalf("NumSections = %d", c.NumSections())
	}

	if c.Section(0).State() != [2]float64{0.5, 0} {
		t.Fatalf("first section lost its state: %v", c.Section(0).State())
	}

	if c.Section(1).State() != [2]float64{} {
		t.Fatalf("added section not cleared: %v", c.Section(1).State())
	}

	c.UpdateCoefficients(nil)
	if c.NumSections() != 0 {
		t.Fatalf("NumSections = %d after shrink", c.NumSections())
	}
}

func TestChainStateRoundTrip(t *testing.T) {
	c := NewChain[float64]([]Coefficients{testCoeffs, testCoeffs})
	for _, x := range testutil.DeterministicNoise(1, 1, 16) {
		c.Process(x)
	}

	saved := c.State()
	a := c.Process(0.1)

	c.Clear()
	if c.LastOut() != 0 {
		t.Fatal("Clear did not reset LastOut")
	}

	c.SetState(saved)
	if b := c.Process(0.1); a != b {
		t.Fatalf("restored chain diverged: %g vs %g", a, b)
	}
}
