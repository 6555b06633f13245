package window

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSize reports a non-positive window length.
	ErrInvalidSize = errors.New("window: size must be > 0")
	// ErrInvalidParameter reports an out-of-range shape parameter.
	ErrInvalidParameter = errors.New("window: invalid parameter")
	// ErrEmptyCoeffs reports an empty coefficient slice.
	ErrEmptyCoeffs = errors.New("window: coefficients must not be empty")
	// ErrZeroCoherentGain reports coefficients summing to zero.
	ErrZeroCoherentGain = errors.New("window: coherent gain is zero")
	// ErrMismatchedLength reports samples and coefficients of different length.
	ErrMismatchedLength = errors.New("window: samples and coefficients differ in length")
	// ErrUnknownType reports a name ParseType does not recognize.
	ErrUnknownType = errors.New("window: unknown type")
)

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return nil
}

func validateRange(name string, v, lo, hi float64, loOpen bool) error {
	bad := math.IsNaN(v) || v < lo || v > hi
	if loOpen && v == lo {
		bad = true
	}

	if bad {
		return fmt.Errorf("%w: %s %g", ErrInvalidParameter, name, v)
	}

	return nil
}
