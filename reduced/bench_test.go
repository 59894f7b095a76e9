package reduced_test

import (
	"testing"

	"github.com/katalvlaran/edpdf/reduced"
)

// profile builds an n-pixel synthetic reduced-intensity profile.
func profile(n int) []float64 {
	z := make([]float64, n)
	for i := range z {
		z[i] = float64(i%17) + 0.5
	}
	return z
}

// BenchmarkDampLorch measures the Lorch window on a 4k-pixel profile.
func BenchmarkDampLorch(b *testing.B) {
	z := profile(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reduced.DampLorch(z, 12.0, 0.01); err != nil {
			b.Fatalf("DampLorch failed: %v", err)
		}
	}
}

// BenchmarkDampUpdatedLorch measures the Soper-Barney window on the same profile.
func BenchmarkDampUpdatedLorch(b *testing.B) {
	z := profile(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reduced.DampUpdatedLorch(z, 12.0, 0.01); err != nil {
			b.Fatalf("DampUpdatedLorch failed: %v", err)
		}
	}
}

// BenchmarkNormalizeToMax measures normalization on the same profile.
func BenchmarkNormalizeToMax(b *testing.B) {
	z := profile(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reduced.NormalizeToMax(z, 32); err != nil {
			b.Fatalf("NormalizeToMax failed: %v", err)
		}
	}
}
