package analysis

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
)

// LeakyIntegrator is a one-pole averager whose input and feedback gains
// are complementary:
//
//	y[n] = x[n] + alpha*(y[n-1] - x[n])
//
// With alpha == 0, the zero value, it passes input through unchanged.
type LeakyIntegrator[T core.Sample] struct {
	alpha T
	y1    T
}

var _ core.Processor[float32] = (*LeakyIntegrator[float32])(nil)

// NewLeakyIntegrator returns an integrator with the given alpha. An
// alpha outside [0, 1) leaves the pass-through default.
func NewLeakyIntegrator[T core.Sample](alpha T) *LeakyIntegrator[T] {
	li := &LeakyIntegrator[T]{}
	li.SetAlpha(alpha)

	return li
}

// Alpha returns the feedback gain.
func (li *LeakyIntegrator[T]) Alpha() T {
	return li.alpha
}

// SetAlpha sets the feedback gain. Values outside [0, 1) are ignored.
func (li *LeakyIntegrator[T]) SetAlpha(alpha T) {
	if alpha >= 0 && alpha < 1 {
		li.alpha = alpha
	}
}

// Process integrates one sample.
func (li *LeakyIntegrator[T]) Process(x T) T {
	li.y1 = core.FlushDenormals(x + li.alpha*(li.y1-x))
	return li.y1
}

// ProcessBlock integrates buf in place.
func (li *LeakyIntegrator[T]) ProcessBlock(buf []T) {
	core.ProcessBlock[T](li, buf)
}

// LastOut returns the most recent output.
func (li *LeakyIntegrator[T]) LastOut() T {
	return li.y1
}

// Clear zeroes the integrator memory. Alpha is kept.
func (li *LeakyIntegrator[T]) Clear() {
	li.y1 = 0
}

// AlphaForTime returns the alpha giving a time constant of seconds: a
// step response reaches 1-1/e of its final value after that time. It
// returns 0 for non-positive arguments.
func AlphaForTime(seconds, sampleRate float64) float64 {
	if !(seconds > 0) || !(sampleRate > 0) || math.IsInf(seconds, 0) {
		return 0
	}

	return math.Exp(-1 / (seconds * sampleRate))
}
