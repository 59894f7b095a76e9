package reduced

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormalizeToMax divides a profile by the maximum of z[indexMin:]. The
// cutoff guards against the large oscillations near r=0 dominating the
// normalization; indexMin = 0 normalizes against the global maximum.
func NormalizeToMax(z []float64, indexMin int) ([]float64, error) {
	if indexMin < 0 || indexMin >= len(z) {
		return nil, ErrIndexRange
	}
	maxVal := floats.Max(z[indexMin:])
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = v / maxVal
	}
	return out, nil
}

// MaskFromPattern multiplies a profile elementwise by a 0/1 background
// pattern of the same length: 1 keeps a pixel, 0 masks it to zero.
func MaskFromPattern(z, pattern []float64) ([]float64, error) {
	if len(pattern) != len(z) {
		return nil, ErrPatternLength
	}
	out := append([]float64(nil), z...)
	floats.Mul(out, pattern)
	return out, nil
}

// DampExponential damps the high-s region by exp(-b*s^2), with b the
// damping parameter and sScale the axis calibration in reciprocal
// angstroms per pixel.
func DampExponential(z []float64, b, sScale float64) []float64 {
	s := ScatteringAxis(len(z), sScale)
	for i, si := range s {
		s[i] = math.Exp(-b * si * si)
	}
	out := append([]float64(nil), z...)
	floats.Mul(out, s)
	return out
}

// DampLorch applies the Lorch (1969) window sin(delta*s)/(delta*s) with
// delta = pi/sMax. The removable singularity at s=0 is zeroed by policy.
func DampLorch(z []float64, sMax, sScale float64) ([]float64, error) {
	if sMax <= 0 {
		return nil, ErrNonPositiveSMax
	}
	delta := math.Pi / sMax
	s := ScatteringAxis(len(z), sScale)
	for i, si := range s {
		x := delta * si
		s[i] = math.Sin(x) / x
	}
	zeroNonFinite(s)
	out := append([]float64(nil), z...)
	floats.Mul(out, s)
	return out, nil
}

// DampUpdatedLorch applies the updated Lorch window of Soper & Barney
// (2011): 3/(delta*s)^3 * (sin(delta*s) - delta*s*cos(delta*s)), with
// delta = pi/sMax. Non-finite values at s=0 are zeroed by policy.
func DampUpdatedLorch(z []float64, sMax, sScale float64) ([]float64, error) {
	if sMax <= 0 {
		return nil, ErrNonPositiveSMax
	}
	delta := math.Pi / sMax
	s := ScatteringAxis(len(z), sScale)
	for i, si := range s {
		x := delta * si
		s[i] = 3 / (x * x * x) * (math.Sin(x) - x*math.Cos(x))
	}
	zeroNonFinite(s)
	out := append([]float64(nil), z...)
	floats.Mul(out, s)
	return out, nil
}

// DampLowQErf damps the low-q region by (erf(scale*s - offset) + 1) / 2, a
// smooth rolloff correcting central-beam effects.
func DampLowQErf(z []float64, scale, offset, sScale float64) []float64 {
	s := ScatteringAxis(len(z), sScale)
	for i, si := range s {
		s[i] = (math.Erf(scale*si-offset) + 1) / 2
	}
	out := append([]float64(nil), z...)
	floats.Mul(out, s)
	return out
}

// zeroNonFinite replaces NaN and +/-Inf in place with 0.
func zeroNonFinite(v []float64) {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			v[i] = 0
		}
	}
}
