package core

import "testing"

type scaler struct {
	k    float64
	last float64
}

func (s *scaler) Process(x float64) float64 {
	s.last = x * s.k
	return s.last
}

func (s *scaler) LastOut() float64 { return s.last }

func (s *scaler) Clear() { s.last = 0 }

type offset32 struct {
	d    float32
	last float32
}

func (o *offset32) Process(x float32) float32 {
	o.last = x + o.d
	return o.last
}

func (o *offset32) LastOut() float32 { return o.last }

func (o *offset32) Clear() { o.last = 0 }

func TestProcessBlock(t *testing.T) {
	buf := []float64{1, 2, 3}
	ProcessBlock[float64](&scaler{k: 2}, buf)

	want := []float64{2, 4, 6}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestProcessBlockToShortDst(t *testing.T) {
	dst := make([]float64, 2)

	n := ProcessBlockTo[float64](&scaler{k: -1}, dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != -1 || dst[1] != -2 {
		t.Fatalf("unexpected dst: %v", dst)
	}
}

func TestChain(t *testing.T) {
	a := &scaler{k: 2}
	b := &scaler{k: 3}
	c := NewChain[float64](a, nil, b)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	if got := c.Process(1); got != 6 {
		t.Fatalf("Process(1) = %v, want 6", got)
	}

	if c.LastOut() != 6 || a.LastOut() != 2 {
		t.Fatalf("LastOut chain=%v first=%v", c.LastOut(), a.LastOut())
	}

	c.Clear()

	if c.LastOut() != 0 || a.LastOut() != 0 || b.LastOut() != 0 {
		t.Fatal("Clear did not reset every stage")
	}
}

func TestChainEmptyIsIdentity(t *testing.T) {
	c := NewChain[float32]()
	if got := c.Process(0.5); got != 0.5 {
		t.Fatalf("Process = %v, want 0.5", got)
	}

	c.Append(&offset32{d: 1})

	if got := c.Process(0.5); got != 1.5 {
		t.Fatalf("Process = %v, want 1.5", got)
	}
}
