package gain

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

const (
	ln10 = 2.30258509299404568401799145468436421

	// 20/ln(10) and ln(10)/20.
	dbPerNeper = 20 / ln10
	neperPerDB = ln10 / 20
)

// FastToDB is [ToDB] computed with an approximate logarithm. Intended
// for metering, not coefficient design.
func FastToDB(x float64) float64 {
	if !(x > floorAmplitude) || math.IsInf(x, 0) {
		return FloorDB
	}

	return dbPerNeper * approx.FastLog(x)
}

// FastToSample is [ToSample] computed with an approximate exponential.
func FastToSample(db float64) float64 {
	if !(db > FloorDB) || math.IsInf(db, 0) {
		return 0
	}

	return approx.FastExp(db * neperPerDB)
}
