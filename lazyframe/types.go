// Package lazyframe defines core types and options for chunked frame iteration.
package lazyframe

import (
	"io"

	"gonum.org/v1/gonum/mat"
)

// Span is a half-open index range [Start, Stop) along one navigation dimension.
type Span struct {
	Start, Stop int
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int { return s.Stop - s.Start }

// Window identifies one chunk's position along the navigation dimensions.
// Nav holds one Span per navigation dimension (one for rank-3 arrays, two
// for rank-4). The two trailing signal dimensions are implicitly selected
// in full.
type Window struct {
	Nav []Span
}

// FrameFunc is a per-frame callable: it receives the 2-D signal data of a
// single frame and returns a fixed-length result (length 1 for scalars).
// Implementations must not retain the frame; it may alias chunk storage
// that is released once the window has been processed.
type FrameFunc func(frame mat.Matrix) ([]float64, error)

// Array is a chunked dataset of rank 3 or 4: one or two navigation
// dimensions followed by exactly two signal dimensions.
//
// Chunks returns one size list per navigation dimension; the sizes along a
// dimension must be contiguous, ordered and sum to that dimension's extent.
// Signal dimensions are never chunked.
//
// Materialize forces exactly one window's data into memory as a dense Block
// shaped (window nav sizes..., signal sizes...). It is the only point where
// out-of-core data is realized.
type Array interface {
	Shape() []int
	Chunks() [][]int
	Materialize(w Window) (*Block, error)
}

// Options configures MapFrames.
//
// Fields:
//   - ResultSize — length of each frame result: 1 (default) for scalar
//     functions, N for vector functions. The output block gains a trailing
//     axis of size N when N > 1.
//   - Progress   — destination for a per-window progress meter; nil (the
//     default) disables progress output entirely.
type Options struct {
	ResultSize int
	Progress   io.Writer
}

// DefaultOptions returns Options with scalar results and no progress output.
func DefaultOptions() Options {
	return Options{
		ResultSize: 1,
		Progress:   nil,
	}
}
