package core

// Sample is the element type accepted by all processing blocks.
type Sample interface {
	~float32 | ~float64
}

// Processor consumes one input sample and produces one output sample.
//
// Implementations keep the most recent output available through LastOut and
// forget all history on Clear. None of the methods allocate or fail.
type Processor[T Sample] interface {
	Process(x T) T
	LastOut() T
	Clear()
}

// ProcessBlock runs p over buf in place.
func ProcessBlock[T Sample](p Processor[T], buf []T) {
	for i, x := range buf {
		buf[i] = p.Process(x)
	}
}

// ProcessBlockTo runs p over src and writes the results to dst. Only
// min(len(dst), len(src)) samples are processed. It returns that count.
func ProcessBlockTo[T Sample](p Processor[T], dst, src []T) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = p.Process(src[i])
	}

	return n
}

// Chain is an ordered series of processors. The output of each stage feeds
// the next one. A Chain is itself a Processor.
type Chain[T Sample] struct {
	stages []Processor[T]
	last   T
}

// NewChain returns a chain over the given stages. Nil stages are skipped.
func NewChain[T Sample](stages ...Processor[T]) *Chain[T] {
	c := &Chain[T]{}
	for _, s := range stages {
		c.Append(s)
	}

	return c
}

// Append adds a stage at the end of the chain.
func (c *Chain[T]) Append(p Processor[T]) {
	if p == nil {
		return
	}

	c.stages = append(c.stages, p)
}

// Len returns the number of stages.
func (c *Chain[T]) Len() int {
	return len(c.stages)
}

// Stage returns the i-th stage.
func (c *Chain[T]) Stage(i int) Processor[T] {
	return c.stages[i]
}

// Process feeds x through every stage in order.
func (c *Chain[T]) Process(x T) T {
	for _, s := range c.stages {
		x = s.Process(x)
	}

	c.last = x

	return x
}

// LastOut returns the most recent chain output.
func (c *Chain[T]) LastOut() T {
	return c.last
}

// Clear clears every stage and the cached output.
func (c *Chain[T]) Clear() {
	for _, s := range c.stages {
		s.Clear()
	}

	c.last = 0
}
