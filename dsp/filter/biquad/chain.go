package biquad

import "github.com/cwbudde/algo-rtdsp/dsp/core"

// ChainOption configures a [Chain].
type ChainOption func(*chainConfig)

type chainConfig struct {
	gain float64
}

// WithGain sets the overall linear gain applied after the last section.
func WithGain(g float64) ChainOption {
	return func(c *chainConfig) {
		c.gain = g
	}
}

// Chain is a cascade of biquad sections followed by a scalar gain.
type Chain[T core.Sample] struct {
	sections []Section[T]
	gain     float64
	g        T
	last     T
}

var _ core.Processor[float32] = (*Chain[float32])(nil)

// NewChain builds a cascade with one section per coefficient set.
func NewChain[T core.Sample](coeffs []Coefficients, opts ...ChainOption) *Chain[T] {
	cfg := chainConfig{gain: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Chain[T]{sections: make([]Section[T], len(coeffs))}
	for i, co := range coeffs {
		c.sections[i].SetCoefficients(co)
	}

	c.SetGain(cfg.gain)

	return c
}

// Process filters one sample through every section.
func (c *Chain[T]) Process(x T) T {
	for i := range c.sections {
		x = c.sections[i].Process(x)
	}

	x *= c.g
	c.last = x

	return x
}

// ProcessBlock filters buf in place.
func (c *Chain[T]) ProcessBlock(buf []T) {
	if len(buf) == 0 {
		return
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}

	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.g
		}
	}

	c.last = buf[len(buf)-1]
}

// LastOut returns the most recent output sample.
func (c *Chain[T]) LastOut() T {
	return c.last
}

// Clear zeroes the state of every section.
func (c *Chain[T]) Clear() {
	for i := range c.sections {
		c.sections[i].Clear()
	}

	c.last = 0
}

// NumSections returns the number of cascaded sections.
func (c *Chain[T]) NumSections() int {
	return len(c.sections)
}

// Order returns the filter order implied by the non-zero coefficients.
func (c *Chain[T]) Order() int {
	order := 0
	for i := range c.sections {
		co := c.sections[i].coeffs
		switch {
		case co.A2 != 0 || co.B2 != 0:
			order += 2
		case co.A1 != 0 || co.B1 != 0:
			order++
		}
	}

	return order
}

// Section returns the i-th section. It panics if i is out of range.
func (c *Chain[T]) Section(i int) *Section[T] {
	return &c.sections[i]
}

// Gain returns the overall linear gain.
func (c *Chain[T]) Gain() float64 {
	return c.gain
}

// SetGain sets the overall linear gain.
func (c *Chain[T]) SetGain(g float64) {
	c.gain = g
	c.g = T(g)
}

// UpdateCoefficients replaces every section's coefficients. State of
// sections that survive is kept; added sections start cleared.
func (c *Chain[T]) UpdateCoefficients(coeffs []Coefficients) {
	if len(coeffs) != len(c.sections) {
		next := make([]Section[T], len(coeffs))
		copy(next, c.sections)
		c.sections = next
	}

	for i, co := range coeffs {
		c.sections[i].SetCoefficients(co)
	}
}

// State returns the state of every section.
func (c *Chain[T]) State() [][2]T {
	out := make([][2]T, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].State()
	}

	return out
}

// SetState restores state captured by [Chain.State]. Extra entries are
// ignored and missing ones leave their section untouched.
func (c *Chain[T]) SetState(state [][2]T) {
	for i := range min(len(state), len(c.sections)) {
		c.sections[i].SetState(state[i])
	}
}
