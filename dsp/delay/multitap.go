package delay

import "github.com/cwbudde/algo-rtdsp/dsp/core"

// Tap is one weighted read position of a [MultiTap].
type Tap[T core.Sample] struct {
	Offset int
	Gain   T
}

// MultiTap writes its input through a [Line] and outputs the gain-weighted
// sum of several taps. Offset 0 is the current input sample, so a MultiTap
// is a sparse FIR filter.
type MultiTap[T core.Sample] struct {
	line   *Line[T]
	taps   []Tap[T]
	output T
}

// NewMultiTap returns a multi-tap reader with room for offsets up to
// maxDelay. Tap offsets are clipped to [0, maxDelay].
func NewMultiTap[T core.Sample](maxDelay int, taps ...Tap[T]) *MultiTap[T] {
	m := &MultiTap[T]{line: New[T](0, maxDelay)}
	m.SetTaps(taps)

	return m
}

// SetTaps replaces the tap set. The slice is copied.
func (m *MultiTap[T]) SetTaps(taps []Tap[T]) {
	m.taps = append(m.taps[:0], taps...)
	for i := range m.taps {
		m.taps[i].Offset = core.ClampInt(m.taps[i].Offset, 0, m.line.MaxDelay())
	}
}

// Taps returns a copy of the tap set.
func (m *MultiTap[T]) Taps() []Tap[T] {
	return append([]Tap[T](nil), m.taps...)
}

// Line exposes the underlying delay line.
func (m *MultiTap[T]) Line() *Line[T] {
	return m.line
}

// Process writes x and returns the weighted tap sum.
func (m *MultiTap[T]) Process(x T) T {
	m.line.Process(x)

	var sum T
	for _, tp := range m.taps {
		sum += tp.Gain * m.line.TapOut(tp.Offset)
	}

	m.output = sum

	return sum
}

// LastOut returns the most recent output.
func (m *MultiTap[T]) LastOut() T {
	return m.output
}

// Clear forgets the signal history.
func (m *MultiTap[T]) Clear() {
	m.line.Clear()
	m.output = 0
}
