package reduced

// ScatteringAxis generates the scattering-vector axis s = scale * [0..n),
// i.e. the physical s value of every pixel of an n-pixel profile calibrated
// at scale reciprocal angstroms per pixel.
func ScatteringAxis(n int, scale float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = scale * float64(i)
	}
	return s
}
