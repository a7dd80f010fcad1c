package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForDotProduct(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}

	var want float64
	for i := range a {
		want += a[i] * b[i]
	}

	assert.InDelta(t, want, For[float64]().DotProductUnsafe(a, b), 1e-12)

	a32 := make([]float32, len(a))
	b32 := make([]float32, len(b))
	for i := range a {
		a32[i] = float32(a[i])
		b32[i] = float32(b[i])
	}
	assert.InDelta(t, want, float64(For[float32]().DotProductUnsafe(a32, b32)), 1e-4)
}

// TestForConvolveValidIsCorrelation pins the kernel orientation the engine relies on.
func TestForConvolveValidIsCorrelation(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5}
	kernel := []float64{1, 0, -1}
	dst := make([]float64, len(signal)-len(kernel)+1)

	For[float64]().ConvolveValid(dst, signal, kernel)

	// dst[i] = signal[i] - signal[i+2]
	require.Len(t, dst, 3)
	for i := range dst {
		assert.InDelta(t, signal[i]-signal[i+2], dst[i], 1e-12, "dst[%d]", i)
	}
}

func TestForScale(t *testing.T) {
	a := []float32{1, -2, 3, -4, 5}
	dst := make([]float32, len(a))

	For[float32]().Scale(dst, a, 0.5)

	for i := range a {
		assert.InDelta(t, float64(a[i])*0.5, float64(dst[i]), 1e-6)
	}
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := For[float64]()
	a := make([]float64, 64)
	c := make([]float64, 64)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}
