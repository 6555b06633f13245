package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(7, 0, 4); got != 4 {
		t.Fatalf("ClampInt(7,0,4) = %d", got)
	}

	if got := ClampInt(-2, 4, 0); got != 0 {
		t.Fatalf("ClampInt(-2,4,0) = %d", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}

	if !NearlyEqual[float32](1e6, 1e6+1, 1e-5) {
		t.Fatal("expected relative tolerance to accept float32 values")
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-35) != 0 {
		t.Fatal("expected tiny value to flush to zero")
	}

	if FlushDenormals(float32(0.5)) != 0.5 {
		t.Fatal("expected normal value to pass through")
	}
}

func TestIsFinite(t *testing.T) {
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) {
		t.Fatal("NaN/Inf reported finite")
	}

	if !IsFinite(float32(3)) {
		t.Fatal("3 reported non-finite")
	}
}
