package gain

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rtdsp/internal/testutil"
)

func TestToDB(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, FloorDB},
		{0.000000999, FloorDB},
		{1e-7, FloorDB},
		{1e-6, FloorDB},
		{1e-5, -100},
		{1e-3, -60},
		{1e-1, -20},
		{1, 0},
		{10, 20},
		{-0.5, FloorDB},
		{math.NaN(), FloorDB},
		{math.Inf(1), FloorDB},
	}

	for _, tt := range tests {
		if got := ToDB(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("ToDB(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestToDBFloat32(t *testing.T) {
	if got := ToDB(float32(1e-6)); got != FloorDB {
		t.Fatalf("ToDB(float32 1e-6) = %g", got)
	}

	if got := ToDB(float32(0.1)); math.Abs(float64(got)+20) > 1e-5 {
		t.Fatalf("ToDB(float32 0.1) = %g", got)
	}
}

func TestToSample(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1000, 0},
		{-120.000001, 0},
		{FloorDB, 0},
		{-100, 1e-5},
		{-60, 1e-3},
		{-20, 0.1},
		{0, 1},
		{6.020599913279624, 2},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		if got := ToSample(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("ToSample(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, db := range []float64{-119, -60, -6, 0, 12} {
		if got := ToDB(ToSample(db)); math.Abs(got-db) > 1e-9 {
			t.Fatalf("round trip %g -> %g", db, got)
		}
	}
}

func TestPowerConversions(t *testing.T) {
	if got := PowerToDB(100.0); math.Abs(got-20) > 1e-12 {
		t.Fatalf("PowerToDB(100) = %g", got)
	}

	if got := PowerToDB(1e-12); got != FloorDB {
		t.Fatalf("PowerToDB at floor = %g", got)
	}

	if got := DBToPower(-30.0); math.Abs(got-1e-3) > 1e-15 {
		t.Fatalf("DBToPower(-30) = %g", got)
	}

	if got := DBToPower(-130.0); got != 0 {
		t.Fatalf("DBToPower below floor = %g", got)
	}
}

func TestApplyGain(t *testing.T) {
	if got := ApplyGain(0.5, 0.25); got != 0.125 {
		t.Fatalf("ApplyGain = %g", got)
	}

	buf := []float32{1, -2, 4}
	ApplyGainBlock(buf, 0.5)

	want := []float32{0.5, -1, 2}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %g want %g", i, buf[i], want[i])
		}
	}
}

func TestApplyGainBlockFloat64(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 16, 33} {
		buf := testutil.DeterministicNoise(int64(n), 1, n)

		want := make([]float64, n)
		for i, v := range buf {
			want[i] = v * -0.75
		}

		ApplyGainBlock(buf, -0.75)
		testutil.RequireSliceNearlyEqual(t, buf, want, 1e-15)
	}

	unity := []float64{1, 2}
	ApplyGainBlock(unity, 1)
	testutil.RequireSliceNearlyEqual(t, unity, []float64{1, 2}, 0)

	ApplyGainBlock([]float64(nil), 2)
}

func TestApplyRamp(t *testing.T) {
	buf := testutil.DC(2, 5)
	scratch := ApplyRamp(buf, nil, 0, 1)

	testutil.RequireSliceNearlyEqual(t, buf, []float64{0, 0.5, 1, 1.5, 2}, 1e-12)

	if len(scratch) != 5 {
		t.Fatalf("scratch len = %d, want 5", len(scratch))
	}

	one := []float64{3}
	ApplyRamp(one, scratch, 0.5, 1)
	if one[0] != 1.5 {
		t.Fatalf("single-sample ramp = %g", one[0])
	}

	flat := testutil.DC(1, 4)
	ApplyRamp(flat, nil, 0.25, 0.25)
	testutil.RequireSliceNearlyEqual(t, flat, testutil.DC(0.25, 4), 1e-15)

	ApplyRamp(nil, nil, 0, 1)
}

func TestApplyRampReusesScratch(t *testing.T) {
	scratch := make([]float64, 0, 64)
	buf := testutil.DC(1, 32)

	allocs := testing.AllocsPerRun(20, func() {
		scratch = ApplyRamp(buf, scratch, 1, 0.5)
	})
	if allocs != 0 {
		t.Fatalf("ApplyRamp allocated %v times per call with a large enough scratch", allocs)
	}

	if cap(scratch) != 64 {
		t.Fatalf("scratch was reallocated: cap=%d", cap(scratch))
	}
}

func TestFastConversions(t *testing.T) {
	for _, x := range []float64{1e-5, 0.01, 0.5, 1, 3} {
		if got, want := FastToDB(x), ToDB(x); math.Abs(got-want) > 1 {
			t.Fatalf("FastToDB(%g) = %g, want ~%g", x, got, want)
		}
	}

	for _, db := range []float64{-90, -40, -6, 0, 6} {
		got, want := FastToSample(db), ToSample(db)
		if math.Abs(got-want) > 0.1*want {
			t.Fatalf("FastToSample(%g) = %g, want ~%g", db, got, want)
		}
	}

	if FastToDB(0) != FloorDB || FastToDB(math.NaN()) != FloorDB {
		t.Fatal("FastToDB floor not applied")
	}

	if FastToSample(FloorDB) != 0 || FastToSample(math.Inf(1)) != 0 {
		t.Fatal("FastToSample floor not applied")
	}
}
