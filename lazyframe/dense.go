package lazyframe

// DenseArray adapts an already in-memory Block to the Array interface with
// a declared navigation chunking. Useful for small datasets and as the
// reference backing in tests: MapFrames over a DenseArray must agree with
// any out-of-core backing of the same data.
type DenseArray struct {
	block  *Block
	chunks [][]int
}

// NewDenseArray wraps b with the given per-navigation-dimension chunk size
// lists. The block rank must be 3 or 4 and the chunk sizes must tile each
// navigation extent exactly.
func NewDenseArray(b *Block, navChunks [][]int) (*DenseArray, error) {
	shape := b.Shape()
	if len(shape) != 3 && len(shape) != 4 {
		return nil, ErrUnsupportedRank
	}
	nav := len(shape) - 2
	if len(navChunks) != nav {
		return nil, ErrChunkMismatch
	}
	chunks := make([][]int, nav)
	for d := 0; d < nav; d++ {
		if _, err := dimSpans(navChunks[d], shape[d]); err != nil {
			return nil, err
		}
		chunks[d] = append([]int(nil), navChunks[d]...)
	}
	return &DenseArray{block: b, chunks: chunks}, nil
}

// Shape returns the full array shape.
func (a *DenseArray) Shape() []int { return a.block.Shape() }

// Chunks returns the navigation chunk size lists.
func (a *DenseArray) Chunks() [][]int {
	out := make([][]int, len(a.chunks))
	for d, c := range a.chunks {
		out[d] = append([]int(nil), c...)
	}
	return out
}

// Materialize copies the window's region out of the backing block. Any
// in-bounds window is accepted, chunk-aligned or not.
func (a *DenseArray) Materialize(w Window) (*Block, error) {
	shape := a.block.Shape()
	nav := len(shape) - 2
	if len(w.Nav) != nav {
		return nil, ErrWindowAlign
	}
	for d, s := range w.Nav {
		if s.Start < 0 || s.Stop > shape[d] || s.Len() <= 0 {
			return nil, ErrWindowAlign
		}
	}

	sig := shape[nav] * shape[nav+1]
	src := a.block.Data()

	if nav == 1 {
		s0 := w.Nav[0]
		data := make([]float64, s0.Len()*sig)
		copy(data, src[s0.Start*sig:s0.Stop*sig])
		return WrapBlock(data, s0.Len(), shape[1], shape[2])
	}

	s0, s1 := w.Nav[0], w.Nav[1]
	rowLen := s1.Len() * sig
	data := make([]float64, s0.Len()*rowLen)
	srcRow := shape[1] * sig
	for i := 0; i < s0.Len(); i++ {
		off := (s0.Start+i)*srcRow + s1.Start*sig
		copy(data[i*rowLen:(i+1)*rowLen], src[off:off+rowLen])
	}
	return WrapBlock(data, s0.Len(), s1.Len(), shape[2], shape[3])
}
