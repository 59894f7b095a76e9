package lazyframe

import "errors"

var (
	// ErrUnsupportedRank indicates an array whose rank is not 3 or 4.
	ErrUnsupportedRank = errors.New("lazyframe: array must have 3 or 4 dimensions")
	// ErrChunkMismatch indicates chunk size lists that do not exactly tile the navigation extent.
	ErrChunkMismatch = errors.New("lazyframe: chunk sizes do not tile the navigation extent")
	// ErrNilFunc indicates a nil frame function.
	ErrNilFunc = errors.New("lazyframe: frame function must not be nil")
	// ErrResultSize indicates a frame result whose length disagrees with Options.ResultSize.
	ErrResultSize = errors.New("lazyframe: frame result length does not match ResultSize")
	// ErrWindowAlign indicates a window that does not coincide with stored chunk boundaries.
	ErrWindowAlign = errors.New("lazyframe: window does not align with chunk boundaries")
	// ErrChunkMissing indicates no payload was stored for a requested chunk.
	ErrChunkMissing = errors.New("lazyframe: no data stored for chunk")
	// ErrChunkShape indicates a chunk payload with the wrong element count.
	ErrChunkShape = errors.New("lazyframe: chunk payload length mismatch")
	// ErrShape indicates an invalid (empty or non-positive) block shape.
	ErrShape = errors.New("lazyframe: invalid shape")
	// ErrROIBounds indicates a region of interest that exceeds the frame bounds.
	ErrROIBounds = errors.New("lazyframe: roi exceeds frame bounds")
)
