package delay

import (
	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-rtdsp/dsp/interp"
)

// Line is a time-varying tapped delay line.
type Line[T core.Sample] struct {
	buffer   []T // len == capacity+1
	output   T
	readPos  int
	writePos int
	delay    int
	mode     interp.Mode
}

// Option configures a Line.
type Option func(*config)

type config struct {
	mode interp.Mode
}

// WithInterpolation selects the kernel used by [Line.TapOutFrac].
// The default is [interp.Hermite].
func WithInterpolation(m interp.Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// New returns a delay line holding up to maxDelay samples with the given
// initial delay. A delay above maxDelay is clipped to maxDelay; negative
// values are treated as 0.
func New[T core.Sample](delay, maxDelay int, opts ...Option) *Line[T] {
	maxDelay = max(maxDelay, 0)

	cfg := config{mode: interp.Hermite}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := &Line[T]{
		buffer: make([]T, maxDelay+1),
		mode:   cfg.mode,
	}
	d.SetDelay(delay)

	return d
}

// SamplesFor converts seconds to a whole sample count at sampleRate, for use
// as a delay or capacity argument.
func SamplesFor(seconds, sampleRate float64) int {
	return core.ProcessorConfig{SampleRate: sampleRate}.Samples(seconds)
}

// MaxDelay returns the capacity in samples.
func (d *Line[T]) MaxDelay() int {
	return len(d.buffer) - 1
}

// SetMaxDelay grows the capacity to maxDelay samples. Requests at or below
// the current capacity are ignored.
//
// The new zeroed slots are inserted between the newest and the oldest sample,
// so every tap offset up to the old capacity still addresses the same sample
// after growth. Offsets beyond the old capacity read zeros until the line has
// run long enough to fill them.
func (d *Line[T]) SetMaxDelay(maxDelay int) {
	if maxDelay <= d.MaxDelay() {
		return
	}

	extra := maxDelay + 1 - len(d.buffer)
	grown := make([]T, maxDelay+1)
	copy(grown, d.buffer[:d.writePos])
	copy(grown[d.writePos+extra:], d.buffer[d.writePos:])

	if d.readPos >= d.writePos && d.delay > 0 {
		d.readPos += extra
	}

	d.buffer = grown
}

// Delay returns the current delay in samples.
func (d *Line[T]) Delay() int {
	return d.delay
}

// SetDelay changes the delay, clipped to [0, MaxDelay]. The read cursor jumps
// to its new position immediately; smoothing the resulting discontinuity is
// left to the caller.
func (d *Line[T]) SetDelay(delay int) {
	delay = core.ClampInt(delay, 0, d.MaxDelay())

	read := d.writePos - delay
	if read < 0 {
		read += len(d.buffer)
	}

	d.readPos = read
	d.delay = delay
}

// Process writes x at the write cursor, then reads the sample at the read
// cursor. Both cursors advance by one.
func (d *Line[T]) Process(x T) T {
	n := len(d.buffer)

	d.buffer[d.writePos] = x
	d.writePos++
	if d.writePos == n {
		d.writePos = 0
	}

	d.output = d.buffer[d.readPos]
	d.readPos++
	if d.readPos == n {
		d.readPos = 0
	}

	return d.output
}

// ProcessBlock runs Process over buf in place.
func (d *Line[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = d.Process(x)
	}
}

// NextOut returns the sample the next Process call will output, without
// moving any cursor.
func (d *Line[T]) NextOut() T {
	return d.buffer[d.readPos]
}

// LastOut returns the most recent output of Process.
func (d *Line[T]) LastOut() T {
	return d.output
}

// Clear zeroes the stored history and the last output. Cursors and delay are
// left unchanged.
func (d *Line[T]) Clear() {
	clear(d.buffer)
	d.output = 0
}
