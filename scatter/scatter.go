package scatter

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Model selects the closed-form scattering-factor parameterization.
type Model int

const (
	// Lobato is the rational five-term model of Lobato & Van Dyck (2014).
	Lobato Model = iota
	// XTables is the five-Gaussian model of International Tables Vol. C,
	// table 4.3.2.3.
	XTables
)

// String implements fmt.Stringer.
func (m Model) String() string {
	switch m {
	case Lobato:
		return "Lobato"
	case XTables:
		return "XTables"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Elements lists the element symbols tabulated for a model, sorted.
func Elements(m Model) []string {
	table, err := modelTable(m)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// BaseCurve evaluates one element's scattering factor f(s) over the axis
// s = sScale * [0..sSize).
func BaseCurve(m Model, element string, sSize int, sScale float64) ([]float64, error) {
	if sSize <= 0 {
		return nil, ErrCurveSize
	}
	table, err := modelTable(m)
	if err != nil {
		return nil, err
	}
	p, ok := table[element]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, element)
	}
	return evalCurve(m, p, sSize, sScale), nil
}

// FitSignal synthesizes, for every pixel of the fitted (slope n, intercept
// c) grids, the scattering intensity curve and the weighted single-curve
// sum of the given composition:
//
//	signal[x,y,:] = n[x,y] * sum_i frac_i * f_i(s)^2 + c[x,y]
//	sum[x,y,:]    = n[x,y] * sum_i frac_i * f_i(s)
//
// fracs should sum to 1; this is the caller's responsibility and is
// deliberately not enforced. sScale is the axis calibration in reciprocal
// angstroms per pixel.
func FitSignal(m Model, elements []string, fracs []float64, n, c *mat.Dense,
	sSize int, sScale float64) (signal, sum *Cube, err error) {
	if len(elements) == 0 || len(elements) != len(fracs) {
		return nil, nil, ErrLengthMismatch
	}
	if sSize <= 0 {
		return nil, nil, ErrCurveSize
	}
	xSize, ySize := n.Dims()
	cx, cy := c.Dims()
	if cx != xSize || cy != ySize {
		return nil, nil, ErrGridShape
	}
	table, err := modelTable(m)
	if err != nil {
		return nil, nil, err
	}

	// Composition curves: sum of frac*f^2 and frac*f over the element mix.
	sumSquares := make([]float64, sSize)
	squareSum := make([]float64, sSize)
	for i, sym := range elements {
		p, ok := table[sym]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownElement, sym)
		}
		fi := evalCurve(m, p, sSize, sScale)
		floats.AddScaled(squareSum, fracs[i], fi)
		floats.Mul(fi, fi)
		floats.AddScaled(sumSquares, fracs[i], fi)
	}

	signal, err = NewCube(xSize, ySize, sSize)
	if err != nil {
		return nil, nil, err
	}
	sum, err = NewCube(xSize, ySize, sSize)
	if err != nil {
		return nil, nil, err
	}

	// Broadcast the per-pixel (N, C) fit over the composition curves.
	for x := 0; x < xSize; x++ {
		for y := 0; y < ySize; y++ {
			nv, cv := n.At(x, y), c.At(x, y)

			dst := signal.Curve(x, y)
			copy(dst, sumSquares)
			floats.Scale(nv, dst)
			floats.AddConst(cv, dst)

			dst = sum.Curve(x, y)
			copy(dst, squareSum)
			floats.Scale(nv, dst)
		}
	}
	return signal, sum, nil
}

func modelTable(m Model) (map[string][5][2]float64, error) {
	switch m {
	case Lobato:
		return lobatoParams, nil
	case XTables:
		return xtablesParams, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownModel, m)
	}
}

// evalCurve computes one element's base curve from its five (a, b) pairs.
func evalCurve(m Model, p [5][2]float64, sSize int, sScale float64) []float64 {
	f := make([]float64, sSize)
	switch m {
	case Lobato:
		for i := range f {
			s := sScale * float64(i)
			q2 := 4 * s * s // (2s)^2
			v := 0.0
			for _, ab := range p {
				d := 1 + ab[1]*q2
				v += ab[0] * (2 + ab[1]*q2) / (d * d)
			}
			f[i] = v
		}
	case XTables:
		for i := range f {
			s := sScale * float64(i)
			v := 0.0
			for _, ab := range p {
				v += ab[0] * math.Exp(-ab[1]*s*s)
			}
			f[i] = v
		}
	}
	return f
}
