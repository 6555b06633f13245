package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

const sr = 48000.0

func mag(c biquad.Coefficients, f float64) float64 {
	return math.Sqrt(c.MagnitudeSquared(f, sr))
}

func TestResponseShapes(t *testing.T) {
	const f, q = 1000.0, DefaultQ

	lp := Lowpass(f, q, sr)
	if math.Abs(mag(lp, 0)-1) > 1e-12 || mag(lp, 10000) > 0.02 {
		t.Fatalf("lowpass: dc=%g 10k=%g", mag(lp, 0), mag(lp, 10000))
	}

	if got := lp.MagnitudeDB(f, sr); math.Abs(got+3.0103) > 1e-3 {
		t.Fatalf("lowpass cutoff = %g dB", got)
	}

	hp := Highpass(f, q, sr)
	if mag(hp, 0) > 1e-12 || math.Abs(mag(hp, sr/2)-1) > 1e-9 {
		t.Fatalf("highpass: dc=%g nyquist=%g", mag(hp, 0), mag(hp, sr/2))
	}

	bp := Bandpass(f, 2, sr)
	if math.Abs(mag(bp, f)-2) > 1e-9 {
		t.Fatalf("constant-skirt bandpass peak = %g, want Q", mag(bp, f))
	}

	bpp := BandpassPeak(f, 2, sr)
	if math.Abs(mag(bpp, f)-1) > 1e-9 || mag(bpp, 100) > 0.2 {
		t.Fatalf("constant-peak bandpass: peak=%g 100Hz=%g", mag(bpp, f), mag(bpp, 100))
	}

	bs := Bandstop(f, q, sr)
	if mag(bs, f) > 1e-9 || math.Abs(mag(bs, 0)-1) > 1e-12 {
		t.Fatalf("bandstop: center=%g dc=%g", mag(bs, f), mag(bs, 0))
	}

	ap := Allpass(f, q, sr)
	for _, hz := range []float64{50, 500, 1000, 8000, 20000} {
		if math.Abs(mag(ap, hz)-1) > 1e-9 {
			t.Fatalf("allpass |H(%g)| = %g", hz, mag(ap, hz))
		}
	}

	if got := math.Abs(ap.Phase(f, sr)); math.Abs(got-math.Pi) > 1e-6 {
		t.Fatalf("allpass phase at center = %g", got)
	}
}

func TestGainShapes(t *testing.T) {
	tests := []struct {
		name      string
		c         biquad.Coefficients
		f         float64
		wantDB    float64
		elsewhere float64
	}{
		{"peak boost", Peak(2000, 9, 1.5, sr), 2000, 9, 20},
		{"peak cut", Peak(2000, -6, 1.5, sr), 2000, -6, 20},
		{"low shelf", LowShelf(200, 6, DefaultQ, sr), 1, 6, 20000},
		{"high shelf", HighShelf(5000, -4, DefaultQ, sr), sr/2 - 1, -4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.MagnitudeDB(tt.f, sr); math.Abs(got-tt.wantDB) > 0.01 {
				t.Fatalf("gain at %g Hz = %g dB, want %g", tt.f, got, tt.wantDB)
			}

			if got := tt.c.MagnitudeDB(tt.elsewhere, sr); math.Abs(got) > 0.1 {
				t.Fatalf("gain at %g Hz = %g dB, want ~0", tt.elsewhere, got)
			}

			if !tt.c.IsStable() {
				t.Fatalf("unstable: %+v", tt.c)
			}
		})
	}
}

func TestZeroGainIsFlat(t *testing.T) {
	for _, c := range []biquad.Coefficients{
		Peak(1000, 0, 1, sr),
		LowShelf(1000, 0, 1, sr),
		HighShelf(1000, 0, 1, sr),
	} {
		for _, f := range []float64{10, 1000, 20000} {
			if math.Abs(c.MagnitudeDB(f, sr)) > 1e-9 {
				t.Fatalf("%+v not flat at %g Hz", c, f)
			}
		}
	}
}

func TestInvalidInputs(t *testing.T) {
	nan := math.NaN()
	zero := biquad.Coefficients{}

	tests := []struct {
		name string
		c    biquad.Coefficients
	}{
		{"zero freq", Lowpass(0, 1, sr)},
		{"negative freq", Highpass(-10, 1, sr)},
		{"at nyquist", Bandpass(sr/2, 1, sr)},
		{"zero rate", Bandstop(100, 1, 0)},
		{"nan freq", Allpass(nan, 1, sr)},
		{"inf rate", BandpassPeak(100, 1, math.Inf(1))},
		{"nan gain", Peak(1000, nan, 1, sr)},
		{"inf gain", LowShelf(1000, math.Inf(-1), 1, sr)},
		{"first order", FirstOrderLowpass(30000, sr)},
	}

	for _, tt := range tests {
		if tt.c != zero {
			t.Fatalf("%s: got %+v, want zero coefficients", tt.name, tt.c)
		}
	}
}

func TestInvalidQFallsBack(t *testing.T) {
	want := Lowpass(1000, DefaultQ, sr)

	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := Lowpass(1000, q, sr); got != want {
			t.Fatalf("q=%g: got %+v want %+v", q, got, want)
		}
	}
}

func TestButterworth(t *testing.T) {
	if ButterworthLP(1000, 0, sr) != nil {
		t.Fatal("order 0 should return nil")
	}

	for order := 1; order <= 6; order++ {
		lp := ButterworthLP(1000, order, sr)
		hp := ButterworthHP(1000, order, sr)

		if len(lp) != (order+1)/2 || len(hp) != len(lp) {
			t.Fatalf("order %d: %d/%d sections", order, len(lp), len(hp))
		}

		lc := biquad.NewChain[float64](lp)
		hc := biquad.NewChain[float64](hp)

		if lc.Order() != order || !lc.IsStable() || !hc.IsStable() {
			t.Fatalf("order %d: got order %d", order, lc.Order())
		}

		if got := lc.MagnitudeDB(1000, sr); math.Abs(got+3.0103) > 1e-3 {
			t.Fatalf("order %d LP cutoff %g dB", order, got)
		}

		if got := hc.MagnitudeDB(1000, sr); math.Abs(got+3.0103) > 1e-3 {
			t.Fatalf("order %d HP cutoff %g dB", order, got)
		}
	}
}

func TestButterworthQ(t *testing.T) {
	tests := []struct {
		order, index int
		want         float64
	}{
		{2, 0, 0.7071067811865476},
		{4, 0, 1.3065629648763766},
		{4, 1, 0.541196100146197},
	}

	for _, tt := range tests {
		if got := ButterworthQ(tt.order, tt.index); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("ButterworthQ(%d,%d) = %g want %g", tt.order, tt.index, got, tt.want)
		}
	}
}
