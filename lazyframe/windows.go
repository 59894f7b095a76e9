package lazyframe

// Windows computes the ordered list of chunk windows covering every chunk
// of a. Windows are emitted in row-major order over the navigation
// dimensions: for rank-4 arrays the outer loop runs over the first
// navigation axis and the inner loop over the second.
//
// Behavior:
//  1. Validate rank: only 3 or 4 dimensions are meaningful (1 or 2
//     navigation axes plus 2 signal axes); anything else is
//     ErrUnsupportedRank.
//  2. Validate chunk geometry: one size list per navigation dimension,
//     every size positive, sizes summing to the dimension extent;
//     otherwise ErrChunkMismatch.
//  3. Walk each chunk-size list accumulating a running offset, emitting
//     [offset, offset+size) spans; the rank-4 window list is the cartesian
//     product of the two span lists.
//
// Pure function of the chunk geometry; no data is materialized.
func Windows(a Array) ([]Window, error) {
	shape := a.Shape()
	if len(shape) != 3 && len(shape) != 4 {
		return nil, ErrUnsupportedRank
	}

	nav := len(shape) - 2
	chunks := a.Chunks()
	if len(chunks) != nav {
		return nil, ErrChunkMismatch
	}

	bounds := make([][]Span, nav)
	for d := 0; d < nav; d++ {
		spans, err := dimSpans(chunks[d], shape[d])
		if err != nil {
			return nil, err
		}
		bounds[d] = spans
	}

	if nav == 1 {
		windows := make([]Window, 0, len(bounds[0]))
		for _, s := range bounds[0] {
			windows = append(windows, Window{Nav: []Span{s}})
		}
		return windows, nil
	}

	windows := make([]Window, 0, len(bounds[0])*len(bounds[1]))
	for _, s0 := range bounds[0] {
		for _, s1 := range bounds[1] {
			windows = append(windows, Window{Nav: []Span{s0, s1}})
		}
	}
	return windows, nil
}

// dimSpans converts one dimension's chunk-size list into contiguous spans
// tiling [0, extent).
func dimSpans(sizes []int, extent int) ([]Span, error) {
	if len(sizes) == 0 {
		return nil, ErrChunkMismatch
	}
	spans := make([]Span, 0, len(sizes))
	offset := 0
	for _, size := range sizes {
		if size <= 0 {
			return nil, ErrChunkMismatch
		}
		spans = append(spans, Span{Start: offset, Stop: offset + size})
		offset += size
	}
	if offset != extent {
		return nil, ErrChunkMismatch
	}
	return spans, nil
}
