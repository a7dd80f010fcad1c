package engine

import (
	"math"

	"github.com/tphakala/go-ltv/internal/simdops"
)

// ConvolveFull returns the full linear convolution of signal and kernel,
// len(signal)+len(kernel)-1 samples, using direct SIMD convolution.
func ConvolveFull[F simdops.Float](signal, kernel []F) []F {
	taps := len(kernel)
	if taps == 0 {
		return nil
	}
	outLen := len(signal) + taps - 1
	out := make([]F, outLen)
	if outLen == 0 {
		return out
	}

	// Valid correlation over a two-sided zero-padded signal with the
	// kernel reversed is the full convolution.
	padded := make([]F, len(signal)+2*(taps-1))
	copy(padded[taps-1:], signal)

	reversed := make([]F, taps)
	for i, v := range kernel {
		reversed[taps-1-i] = v
	}

	simdops.For[F]().ConvolveValid(out, padded, reversed)
	return out
}

// ConvolveFullFFT is ConvolveFull for float64 that switches to overlap-save
// FFT convolution once the kernel reaches MinKernelForFFT taps.
// Inputs holding NaN or Inf stay on the direct path: a transform would
// spread them over every sample of the block.
func ConvolveFullFFT(signal, kernel []float64) []float64 {
	if len(kernel) < MinKernelForFFT || !allFinite(signal) || !allFinite(kernel) {
		return ConvolveFull(signal, kernel)
	}
	return NewFFTConvolver(kernel).ConvolveFull(signal)
}

func allFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
