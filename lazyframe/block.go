package lazyframe

import (
	"gonum.org/v1/gonum/mat"
)

// Block is a dense, row-major float64 buffer of rank 1 to 4. It is the
// materialized form of a chunk and the output container of MapFrames.
//
// Indexing follows gonum conventions: out-of-range access panics, since it
// is a programmer error rather than a data error.
type Block struct {
	shape   []int
	strides []int
	data    []float64
}

// NewBlock allocates a zero-initialized block with the given shape.
func NewBlock(shape ...int) (*Block, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	return wrap(make([]float64, n), shape), nil
}

// WrapBlock interprets an existing row-major slice as a block of the given
// shape without copying. The slice length must equal the shape's element
// count.
func WrapBlock(data []float64, shape ...int) (*Block, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, ErrShape
	}
	return wrap(data, shape), nil
}

func checkShape(shape []int) (int, error) {
	if len(shape) == 0 || len(shape) > 4 {
		return 0, ErrShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrShape
		}
		n *= d
	}
	return n, nil
}

func wrap(data []float64, shape []int) *Block {
	strides := make([]int, len(shape))
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= shape[d]
	}
	return &Block{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    data,
	}
}

// Rank returns the number of dimensions.
func (b *Block) Rank() int { return len(b.shape) }

// Shape returns a copy of the block's dimensions.
func (b *Block) Shape() []int { return append([]int(nil), b.shape...) }

// Data returns the backing row-major slice. Mutating it mutates the block.
func (b *Block) Data() []float64 { return b.data }

// At returns the element at the given coordinate.
func (b *Block) At(idx ...int) float64 {
	return b.data[b.offset(idx)]
}

// Set stores v at the given coordinate.
func (b *Block) Set(v float64, idx ...int) {
	b.data[b.offset(idx)] = v
}

func (b *Block) offset(idx []int) int {
	if len(idx) != len(b.shape) {
		panic("lazyframe: coordinate rank mismatch")
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= b.shape[d] {
			panic("lazyframe: coordinate out of range")
		}
		off += i * b.strides[d]
	}
	return off
}

// Frame returns the 2-D signal slice at the given navigation coordinate as
// a gonum matrix view. The view aliases the block's storage; no copy is
// made. The block rank must equal len(nav)+2.
func (b *Block) Frame(nav ...int) *mat.Dense {
	rank := len(b.shape)
	if len(nav) != rank-2 {
		panic("lazyframe: navigation coordinate rank mismatch")
	}
	off := 0
	for d, i := range nav {
		if i < 0 || i >= b.shape[d] {
			panic("lazyframe: navigation coordinate out of range")
		}
		off += i * b.strides[d]
	}
	rows, cols := b.shape[rank-2], b.shape[rank-1]
	return mat.NewDense(rows, cols, b.data[off:off+rows*cols])
}
