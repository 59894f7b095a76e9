package lazyframe_test

import (
	"testing"

	"github.com/katalvlaran/edpdf/lazyframe"
)

// seqBlock builds a block of the given shape filled with 0,1,2,... so every
// element value encodes its own flat position.
func seqBlock(t *testing.T, shape ...int) *lazyframe.Block {
	t.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	b, err := lazyframe.WrapBlock(data, shape...)
	if err != nil {
		t.Fatalf("WrapBlock(%v): %v", shape, err)
	}
	return b
}

// seqDense wraps a sequential block in a DenseArray with the given chunking.
func seqDense(t *testing.T, shape []int, chunks [][]int) *lazyframe.DenseArray {
	t.Helper()
	a, err := lazyframe.NewDenseArray(seqBlock(t, shape...), chunks)
	if err != nil {
		t.Fatalf("NewDenseArray(%v, %v): %v", shape, chunks, err)
	}
	return a
}

// rankStub fakes an Array of arbitrary rank for validation tests. It must
// never be materialized.
type rankStub struct {
	shape  []int
	chunks [][]int
}

func (s rankStub) Shape() []int    { return s.shape }
func (s rankStub) Chunks() [][]int { return s.chunks }

func (s rankStub) Materialize(lazyframe.Window) (*lazyframe.Block, error) {
	panic("rankStub must not be materialized")
}
