package scatter

// Cube is a dense row-major (x, y, s) buffer: one curve of length S per
// scan pixel.
type Cube struct {
	x, y, s int
	data    []float64
}

// NewCube allocates a zero-initialized cube.
func NewCube(x, y, s int) (*Cube, error) {
	if x <= 0 || y <= 0 || s <= 0 {
		return nil, ErrCubeShape
	}
	return &Cube{x: x, y: y, s: s, data: make([]float64, x*y*s)}, nil
}

// Dims returns the cube dimensions (grid-x, grid-y, curve length).
func (c *Cube) Dims() (x, y, s int) { return c.x, c.y, c.s }

// At returns the element at pixel (i, j), curve position k. Out-of-range
// access panics, following gonum indexing conventions.
func (c *Cube) At(i, j, k int) float64 {
	return c.data[c.offset(i, j)+k]
}

// Curve returns the curve at pixel (i, j) as a view into the cube's
// storage; mutating it mutates the cube.
func (c *Cube) Curve(i, j int) []float64 {
	off := c.offset(i, j)
	return c.data[off : off+c.s]
}

// Data returns the backing row-major slice.
func (c *Cube) Data() []float64 { return c.data }

func (c *Cube) offset(i, j int) int {
	if i < 0 || i >= c.x || j < 0 || j >= c.y {
		panic("scatter: pixel out of range")
	}
	return (i*c.y + j) * c.s
}
