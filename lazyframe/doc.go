// Package lazyframe iterates chunked, lazily-evaluated scan arrays one
// chunk at a time, applying a caller-supplied function to every 2-D frame.
//
// What:
//
//   - Array abstracts a chunked dataset of rank 3 or 4: one or two leading
//     navigation dimensions (scan position), two trailing signal dimensions
//     (detector pixels). Chunks partition the navigation dimensions only.
//   - Windows computes the ordered list of chunk windows covering an Array.
//   - MapFrames materializes one window at a time and applies a FrameFunc to
//     every frame inside it, writing scalar or vector results into a dense
//     navigation-shaped Block.
//   - ChunkStore is a zstd-compressed in-memory Array; DenseArray wraps an
//     already-dense Block with a declared chunking.
//   - SumFrame and RectSum are ready-made FrameFuncs for integrated
//     (virtual dark-field) intensity images.
//
// Why:
//
//   - 4-D STEM scans routinely exceed memory; per-chunk iteration bounds
//     peak residency to a single chunk plus the (small) output image.
//   - Center-of-mass, virtual imaging and peak metrics are all "one number
//     (or short vector) per frame" computations, a perfect fit for a single
//     generic driver.
//
// Complexity:
//
//   - Windows:   O(k) over k chunks. Memory: O(k).
//   - MapFrames: O(F·cost(fn)) over F frames; peak memory one chunk.
//
// Errors:
//
//   - ErrUnsupportedRank: array rank is not 3 or 4.
//   - ErrChunkMismatch: chunk sizes do not tile the navigation extent.
//   - ErrNilFunc: no frame function supplied.
//   - ErrResultSize: a frame result length disagrees with Options.ResultSize.
//   - ErrWindowAlign: a window does not start on a chunk boundary.
//   - ErrChunkMissing: the store holds no data for a requested chunk.
//   - ErrChunkShape: a chunk payload has the wrong element count.
//   - ErrShape: invalid block shape.
//   - ErrROIBounds: an ROI reducer exceeds the frame bounds.
package lazyframe
