package delay

import "github.com/cwbudde/algo-rtdsp/dsp/core"

// Comb is a comb filter built on a [Line].
//
// In feedback form it computes y[n] = x[n] + g*y[n-D]; in feedforward form
// y[n] = x[n] + g*x[n-D]. An optional one-pole lowpass damps the feedback
// path.
type Comb[T core.Sample] struct {
	line        *Line[T]
	gain        T
	damp        T
	dampState   T
	feedforward bool
	output      T
}

// CombOption configures a Comb.
type CombOption func(*combConfig)

type combConfig struct {
	gain        float64
	damp        float64
	feedforward bool
}

// WithCombGain sets g. Feedback gains are clipped to (-1, 1) to keep the loop
// stable.
func WithCombGain(g float64) CombOption {
	return func(c *combConfig) {
		c.gain = g
	}
}

// WithDamping enables a lowpass in the feedback path; 0 disables it, values
// close to 1 darken the repeats. Values outside [0, 1) are ignored.
func WithDamping(d float64) CombOption {
	return func(c *combConfig) {
		if d >= 0 && d < 1 {
			c.damp = d
		}
	}
}

// WithFeedforward selects the FIR comb form.
func WithFeedforward() CombOption {
	return func(c *combConfig) {
		c.feedforward = true
	}
}

// NewComb returns a comb with a delay of delay samples (at least 1) and room
// to grow up to maxDelay.
func NewComb[T core.Sample](delay, maxDelay int, opts ...CombOption) *Comb[T] {
	cfg := combConfig{gain: 0.5}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	maxDelay = max(maxDelay, 1)

	c := &Comb[T]{
		line:        New[T](max(delay, 1), maxDelay),
		damp:        T(cfg.damp),
		feedforward: cfg.feedforward,
	}
	c.SetGain(T(cfg.gain))

	return c
}

// SetGain updates g.
func (c *Comb[T]) SetGain(g T) {
	if !c.feedforward {
		const limit = 0.999
		g = core.Clamp(g, -limit, limit)
	}

	c.gain = g
}

// Gain returns g.
func (c *Comb[T]) Gain() T {
	return c.gain
}

// SetDelay changes the comb delay, clipped to [1, MaxDelay].
func (c *Comb[T]) SetDelay(delay int) {
	c.line.SetDelay(max(delay, 1))
}

// Delay returns the comb delay in samples.
func (c *Comb[T]) Delay() int {
	return c.line.Delay()
}

// Line exposes the underlying delay line for extra taps.
func (c *Comb[T]) Line() *Line[T] {
	return c.line
}

// Process filters one sample.
func (c *Comb[T]) Process(x T) T {
	if c.feedforward {
		c.output = x + c.gain*c.line.Process(x)
		return c.output
	}

	delayed := c.line.NextOut()
	if c.damp > 0 {
		c.dampState = core.FlushDenormals(delayed*(1-c.damp) + c.dampState*c.damp)
		delayed = c.dampState
	}

	c.output = x + c.gain*delayed
	c.line.Process(c.output)

	return c.output
}

// LastOut returns the most recent output.
func (c *Comb[T]) LastOut() T {
	return c.output
}

// Clear resets the line and the damping state.
func (c *Comb[T]) Clear() {
	c.line.Clear()
	c.dampState = 0
	c.output = 0
}
