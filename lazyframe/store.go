package lazyframe

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ChunkStore is an in-memory Array whose chunks are held zstd-compressed
// and decompressed only on Materialize. Payloads are little-endian float64,
// row-major ("C" order), one blob per chunk keyed "i" (rank 3) or "i.j"
// (rank 4).
//
// Put and Materialize may be called from different goroutines; the blob map
// is guarded, and the zstd codec calls are the stateless EncodeAll and
// DecodeAll forms.
type ChunkStore struct {
	shape  []int
	chunks [][]int
	spans  [][]Span

	enc *zstd.Encoder
	dec *zstd.Decoder

	mu    sync.Mutex
	blobs map[string][]byte
}

var _ Array = (*ChunkStore)(nil)

// NewChunkStore creates an empty store for an array of the given shape
// (rank 3 or 4) partitioned by the per-navigation-dimension chunk size
// lists. Signal dimensions are never chunked.
func NewChunkStore(shape []int, navChunks [][]int) (*ChunkStore, error) {
	if len(shape) != 3 && len(shape) != 4 {
		return nil, ErrUnsupportedRank
	}
	for _, d := range shape {
		if d <= 0 {
			return nil, ErrShape
		}
	}
	nav := len(shape) - 2
	if len(navChunks) != nav {
		return nil, ErrChunkMismatch
	}

	spans := make([][]Span, nav)
	chunks := make([][]int, nav)
	for d := 0; d < nav; d++ {
		s, err := dimSpans(navChunks[d], shape[d])
		if err != nil {
			return nil, err
		}
		spans[d] = s
		chunks[d] = append([]int(nil), navChunks[d]...)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &ChunkStore{
		shape:  append([]int(nil), shape...),
		chunks: chunks,
		spans:  spans,
		enc:    enc,
		dec:    dec,
		blobs:  map[string][]byte{},
	}, nil
}

// Shape returns the full array shape.
func (s *ChunkStore) Shape() []int { return append([]int(nil), s.shape...) }

// Chunks returns the navigation chunk size lists.
func (s *ChunkStore) Chunks() [][]int {
	out := make([][]int, len(s.chunks))
	for d, c := range s.chunks {
		out[d] = append([]int(nil), c...)
	}
	return out
}

// PutChunk compresses and stores one chunk's data. idx addresses the chunk
// grid (one index per navigation dimension); data must hold exactly
// chunk-nav-sizes × signal-sizes row-major elements.
func (s *ChunkStore) PutChunk(idx []int, data []float64) error {
	sizes, err := s.chunkSizes(idx)
	if err != nil {
		return err
	}
	want := s.signalLen()
	for _, n := range sizes {
		want *= n
	}
	if len(data) != want {
		return ErrChunkShape
	}

	raw := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(v))
	}
	blob := s.enc.EncodeAll(raw, nil)

	s.mu.Lock()
	s.blobs[chunkKey(idx)] = blob
	s.mu.Unlock()
	return nil
}

// Materialize decompresses exactly one chunk. The window must coincide with
// a stored chunk's boundaries.
func (s *ChunkStore) Materialize(w Window) (*Block, error) {
	nav := len(s.shape) - 2
	if len(w.Nav) != nav {
		return nil, ErrWindowAlign
	}
	idx := make([]int, nav)
	for d, span := range w.Nav {
		i, ok := findSpan(s.spans[d], span)
		if !ok {
			return nil, ErrWindowAlign
		}
		idx[d] = i
	}

	key := chunkKey(idx)
	s.mu.Lock()
	blob, ok := s.blobs[key]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChunkMissing, key)
	}

	raw, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, err
	}
	if len(raw)%8 != 0 {
		return nil, ErrChunkShape
	}
	data := make([]float64, len(raw)/8)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}

	blockShape := make([]int, 0, nav+2)
	for _, span := range w.Nav {
		blockShape = append(blockShape, span.Len())
	}
	blockShape = append(blockShape, s.shape[nav], s.shape[nav+1])
	return WrapBlock(data, blockShape...)
}

// chunkSizes validates a chunk-grid index and returns the chunk's
// navigation dimensions.
func (s *ChunkStore) chunkSizes(idx []int) ([]int, error) {
	if len(idx) != len(s.chunks) {
		return nil, ErrChunkMismatch
	}
	sizes := make([]int, len(idx))
	for d, i := range idx {
		if i < 0 || i >= len(s.chunks[d]) {
			return nil, ErrChunkMismatch
		}
		sizes[d] = s.chunks[d][i]
	}
	return sizes, nil
}

func (s *ChunkStore) signalLen() int {
	nav := len(s.shape) - 2
	return s.shape[nav] * s.shape[nav+1]
}

// findSpan locates a span among a dimension's chunk boundaries.
func findSpan(spans []Span, want Span) (int, bool) {
	for i, s := range spans {
		if s == want {
			return i, true
		}
	}
	return 0, false
}

// chunkKey renders a chunk-grid index as "i" or "i.j".
func chunkKey(idx []int) string {
	if len(idx) == 1 {
		return strconv.Itoa(idx[0])
	}
	var sb strings.Builder
	for d, i := range idx {
		if d > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}
