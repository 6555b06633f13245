package biquad

import (
	"sync"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-rtdsp/internal/cpu"
)

// Coefficients holds normalized biquad coefficients (a0 == 1):
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Passthrough returns coefficients of the identity filter.
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

var (
	dispatchOnce     sync.Once
	processBlockImpl registry.ProcessBlockFn
	kernelName       string
)

func processBlockKernel() registry.ProcessBlockFn {
	dispatchOnce.Do(func() {
		entry := registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			panic("biquad: no ProcessBlock implementation registered")
		}

		processBlockImpl = entry.ProcessBlock
		kernelName = entry.Name
	})

	return processBlockImpl
}

// Kernel reports the name of the block kernel selected for float64
// buffers on this host.
func Kernel() string {
	processBlockKernel()
	return kernelName
}

// Section is a single DF2T biquad. The zero value outputs silence; use
// [NewSection] or [Section.SetCoefficients] to configure it.
type Section[T core.Sample] struct {
	coeffs Coefficients

	b0, b1, b2 T
	a1, a2     T

	d0, d1 T
	last   T
}

var _ core.Processor[float64] = (*Section[float64])(nil)

// NewSection returns a section with cleared state.
func NewSection[T core.Sample](c Coefficients) *Section[T] {
	s := &Section[T]{}
	s.SetCoefficients(c)

	return s
}

// SetCoefficients replaces the transfer function. State is kept so
// coefficients can be swept while running.
func (s *Section[T]) SetCoefficients(c Coefficients) {
	s.coeffs = c
	s.b0, s.b1, s.b2 = T(c.B0), T(c.B1), T(c.B2)
	s.a1, s.a2 = T(c.A1), T(c.A2)
}

// Coefficients returns the current transfer function.
func (s *Section[T]) Coefficients() Coefficients {
	return s.coeffs
}

// Process filters one sample.
func (s *Section[T]) Process(x T) T {
	y := s.b0*x + s.d0
	s.d0 = s.b1*x - s.a1*y + s.d1
	s.d1 = s.b2*x - s.a2*y
	s.last = y

	return y
}

// ProcessBlock filters buf in place.
func (s *Section[T]) ProcessBlock(buf []T) {
	if len(buf) == 0 {
		return
	}

	if f, ok := any(buf).([]float64); ok {
		d0, d1 := processBlockKernel()(registry.Coefficients(s.coeffs), float64(s.d0), float64(s.d1), f)
		s.d0, s.d1 = T(d0), T(d1)
		s.last = buf[len(buf)-1]

		return
	}

	b0, b1, b2 := s.b0, s.b1, s.b2
	a1, a2 := s.a1, s.a2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
	s.last = buf[len(buf)-1]
}

// ProcessBlockTo filters src into dst and returns the number of samples
// written, min(len(dst), len(src)).
func (s *Section[T]) ProcessBlockTo(dst, src []T) int {
	n := copy(dst, src)
	s.ProcessBlock(dst[:n])

	return n
}

// LastOut returns the most recent output sample.
func (s *Section[T]) LastOut() T {
	return s.last
}

// Clear zeroes the state and the last output.
func (s *Section[T]) Clear() {
	s.d0, s.d1 = 0, 0
	s.last = 0
}

// State returns the two DF2T state variables.
func (s *Section[T]) State() [2]T {
	return [2]T{s.d0, s.d1}
}

// SetState restores state captured by [Section.State].
func (s *Section[T]) SetState(state [2]T) {
	s.d0, s.d1 = state[0], state[1]
}
