package gain

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
)

const (
	// FloorDB is the lowest level reported by the conversions.
	FloorDB = -120.0

	// floorAmplitude is 10^(FloorDB/20).
	floorAmplitude = 1e-6

	floorPower = floorAmplitude * floorAmplitude
)

// ToDB converts an amplitude to dBFS.
func ToDB[T core.Sample](x T) T {
	v := float64(x)
	if !(v > floorAmplitude) || math.IsInf(v, 0) {
		return FloorDB
	}

	return T(20 * math.Log10(v))
}

// ToSample converts dBFS to an amplitude.
func ToSample[T core.Sample](db T) T {
	v := float64(db)
	if !(v > FloorDB) || math.IsInf(v, 0) {
		return 0
	}

	return T(math.Pow(10, v/20))
}

// PowerToDB converts a power ratio to dB (10*log10) with the same floor.
func PowerToDB[T core.Sample](p T) T {
	v := float64(p)
	if !(v > floorPower) || math.IsInf(v, 0) {
		return FloorDB
	}

	return T(10 * math.Log10(v))
}

// DBToPower converts dB to a power ratio.
func DBToPower[T core.Sample](db T) T {
	v := float64(db)
	if !(v > FloorDB) || math.IsInf(v, 0) {
		return 0
	}

	return T(math.Pow(10, v/10))
}

// ApplyGain scales x by ratio.
func ApplyGain[T core.Sample](x, ratio T) T {
	return x * ratio
}
