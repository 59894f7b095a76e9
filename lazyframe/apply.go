package lazyframe

import (
	"fmt"
)

// MapFrames applies fn to every frame of a chunked array, materializing one
// chunk at a time, and returns a dense block holding each frame's result at
// its navigation coordinate.
//
// The output is shaped like the navigation dimensions of a, with one extra
// trailing axis of size Options.ResultSize when ResultSize > 1. A nil opts
// (or a zero ResultSize) means scalar results and no progress output.
//
// Behavior:
//  1. Validate rank and chunk geometry exactly as Windows does; no output
//     is allocated on failure.
//  2. For each window, in row-major window order: materialize only that
//     chunk, then visit its frames in row-major local order. Each frame's
//     global coordinate is the window start plus the local offset.
//  3. Any error from fn (or a result length differing from ResultSize)
//     aborts immediately; the partial output is discarded.
//
// Exactly one chunk's data is resident at a time; every output cell is
// written exactly once, so the result is independent of visiting order.
func MapFrames(a Array, fn FrameFunc, opts *Options) (*Block, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ResultSize == 0 {
		o.ResultSize = 1
	}
	if o.ResultSize < 0 {
		return nil, ErrResultSize
	}

	windows, err := Windows(a)
	if err != nil {
		return nil, err
	}

	shape := a.Shape()
	navShape := shape[:len(shape)-2]
	outShape := append([]int(nil), navShape...)
	if o.ResultSize > 1 {
		outShape = append(outShape, o.ResultSize)
	}
	out, err := NewBlock(outShape...)
	if err != nil {
		return nil, err
	}

	prog := newMeter(o.Progress, len(windows))
	for _, w := range windows {
		chunk, err := a.Materialize(w)
		if err != nil {
			return nil, err
		}
		if err := applyWindow(out, chunk, w, fn, o.ResultSize); err != nil {
			return nil, err
		}
		prog.step()
	}
	prog.finish()

	return out, nil
}

// applyWindow visits every frame of one materialized chunk in row-major
// local order and writes results at global navigation coordinates.
func applyWindow(out, chunk *Block, w Window, fn FrameFunc, resultSize int) error {
	switch len(w.Nav) {
	case 1:
		for i := 0; i < w.Nav[0].Len(); i++ {
			res, err := fn(chunk.Frame(i))
			if err != nil {
				return fmt.Errorf("frame %d: %w", w.Nav[0].Start+i, err)
			}
			if err := store1(out, w.Nav[0].Start+i, res, resultSize); err != nil {
				return err
			}
		}
	case 2:
		for i := 0; i < w.Nav[0].Len(); i++ {
			for j := 0; j < w.Nav[1].Len(); j++ {
				res, err := fn(chunk.Frame(i, j))
				if err != nil {
					return fmt.Errorf("frame (%d,%d): %w",
						w.Nav[0].Start+i, w.Nav[1].Start+j, err)
				}
				if err := store2(out, w.Nav[0].Start+i, w.Nav[1].Start+j, res, resultSize); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func store1(out *Block, i int, res []float64, resultSize int) error {
	if len(res) != resultSize {
		return ErrResultSize
	}
	if resultSize == 1 {
		out.Set(res[0], i)
		return nil
	}
	for k, v := range res {
		out.Set(v, i, k)
	}
	return nil
}

func store2(out *Block, i, j int, res []float64, resultSize int) error {
	if len(res) != resultSize {
		return ErrResultSize
	}
	if resultSize == 1 {
		out.Set(res[0], i, j)
		return nil
	}
	for k, v := range res {
		out.Set(v, i, j, k)
	}
	return nil
}
