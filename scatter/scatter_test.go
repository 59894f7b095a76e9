package scatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/edpdf/scatter"
)

// constGrid builds an r x c grid filled with v.
func constGrid(r, c int, v float64) *mat.Dense {
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.Set(i, j, v)
		}
	}
	return g
}

// TestFitSignal_SingleElementIdentity checks that with one element of
// fraction 1 and N=1, C=0 everywhere, the weighted sum equals the element's
// own base curve at every pixel, for both models.
func TestFitSignal_SingleElementIdentity(t *testing.T) {
	const (
		sSize  = 64
		sScale = 0.05
	)
	for _, m := range []scatter.Model{scatter.Lobato, scatter.XTables} {
		t.Run(m.String(), func(t *testing.T) {
			base, err := scatter.BaseCurve(m, "Cu", sSize, sScale)
			require.NoError(t, err)

			n := constGrid(2, 3, 1)
			c := constGrid(2, 3, 0)
			signal, sum, err := scatter.FitSignal(m, []string{"Cu"}, []float64{1.0}, n, c, sSize, sScale)
			require.NoError(t, err)

			for x := 0; x < 2; x++ {
				for y := 0; y < 3; y++ {
					assert.Equal(t, base, sum.Curve(x, y), "sum at (%d,%d)", x, y)
					for k := 0; k < sSize; k++ {
						assert.InDelta(t, base[k]*base[k], signal.At(x, y, k), 1e-12,
							"signal at (%d,%d,%d)", x, y, k)
					}
				}
			}
		})
	}
}

// TestFitSignal_PerPixelBroadcast verifies the N*curve+C broadcast for a
// two-element composition with per-pixel fit values.
func TestFitSignal_PerPixelBroadcast(t *testing.T) {
	const (
		sSize  = 16
		sScale = 0.1
	)
	elements := []string{"Fe", "O"}
	fracs := []float64{0.4, 0.6}

	n := mat.NewDense(2, 2, []float64{1, 2, 0.5, 3})
	c := mat.NewDense(2, 2, []float64{0, -1, 2, 0.25})

	signal, sum, err := scatter.FitSignal(scatter.XTables, elements, fracs, n, c, sSize, sScale)
	require.NoError(t, err)

	fFe, err := scatter.BaseCurve(scatter.XTables, "Fe", sSize, sScale)
	require.NoError(t, err)
	fO, err := scatter.BaseCurve(scatter.XTables, "O", sSize, sScale)
	require.NoError(t, err)

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			nv, cv := n.At(x, y), c.At(x, y)
			for k := 0; k < sSize; k++ {
				meanSq := 0.4*fFe[k]*fFe[k] + 0.6*fO[k]*fO[k]
				mean := 0.4*fFe[k] + 0.6*fO[k]
				assert.InDelta(t, nv*meanSq+cv, signal.At(x, y, k), 1e-12, "signal (%d,%d,%d)", x, y, k)
				assert.InDelta(t, nv*mean, sum.At(x, y, k), 1e-12, "sum (%d,%d,%d)", x, y, k)
			}
		}
	}
}

// TestFitSignal_Validation covers structural argument errors. Fractions not
// summing to 1 are intentionally accepted.
func TestFitSignal_Validation(t *testing.T) {
	n := constGrid(2, 2, 1)
	c := constGrid(2, 2, 0)

	cases := []struct {
		name     string
		model    scatter.Model
		elements []string
		fracs    []float64
		c        *mat.Dense
		sSize    int
		err      error
	}{
		{"NoElements", scatter.Lobato, nil, nil, c, 8, scatter.ErrLengthMismatch},
		{"LengthMismatch", scatter.Lobato, []string{"Fe", "O"}, []float64{1}, c, 8, scatter.ErrLengthMismatch},
		{"UnknownElement", scatter.Lobato, []string{"Xx"}, []float64{1}, c, 8, scatter.ErrUnknownElement},
		{"GridShape", scatter.Lobato, []string{"Fe"}, []float64{1}, constGrid(3, 2, 0), 8, scatter.ErrGridShape},
		{"CurveSize", scatter.Lobato, []string{"Fe"}, []float64{1}, c, 0, scatter.ErrCurveSize},
		{"UnknownModel", scatter.Model(99), []string{"Fe"}, []float64{1}, c, 8, scatter.ErrUnknownModel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := scatter.FitSignal(tc.model, tc.elements, tc.fracs, n, tc.c, tc.sSize, 0.1)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("FractionsNotNormalized", func(t *testing.T) {
		_, _, err := scatter.FitSignal(scatter.Lobato, []string{"Fe", "O"}, []float64{2, 3}, n, c, 8, 0.1)
		assert.NoError(t, err, "fraction normalization is the caller's responsibility")
	})
}

// TestBaseCurve_ClosedFormAtOrigin pins the s=0 values implied by the
// parameterizations: sum(a) for XTables, 2*sum(a) for Lobato.
func TestBaseCurve_ClosedFormAtOrigin(t *testing.T) {
	const sumAXTablesC = 0.0893 + 0.2563 + 0.7570 + 1.0487 + 0.3575

	f, err := scatter.BaseCurve(scatter.XTables, "C", 4, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, sumAXTablesC, f[0], 1e-12)

	const sumALobatoC = 0.0447 + 0.1282 + 0.3785 + 0.5244 + 0.1788
	f, err = scatter.BaseCurve(scatter.Lobato, "C", 4, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 2*sumALobatoC, f[0], 1e-12)
}

// TestBaseCurve_Decays checks the physically required monotone falloff of
// the factor curves over the tabulated range.
func TestBaseCurve_Decays(t *testing.T) {
	for _, m := range []scatter.Model{scatter.Lobato, scatter.XTables} {
		for _, sym := range scatter.Elements(m) {
			f, err := scatter.BaseCurve(m, sym, 128, 0.05)
			require.NoError(t, err, "%v %s", m, sym)
			assert.Greater(t, f[0], f[len(f)-1], "%v %s must decay with s", m, sym)
			assert.Greater(t, f[len(f)-1], 0.0, "%v %s stays positive", m, sym)
		}
	}
}

// TestElements_Coverage checks both tables expose the same sorted coverage.
func TestElements_Coverage(t *testing.T) {
	lob := scatter.Elements(scatter.Lobato)
	xt := scatter.Elements(scatter.XTables)

	assert.Equal(t, lob, xt, "both tables cover the same elements")
	assert.Contains(t, lob, "Fe")
	assert.IsIncreasing(t, lob)
	assert.Nil(t, scatter.Elements(scatter.Model(99)))
}

// TestModel_String covers the Stringer.
func TestModel_String(t *testing.T) {
	assert.Equal(t, "Lobato", scatter.Lobato.String())
	assert.Equal(t, "XTables", scatter.XTables.String())
	assert.Equal(t, "Model(7)", scatter.Model(7).String())
}
