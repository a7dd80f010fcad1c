package engine

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTConvolver performs overlap-save FFT convolution against a fixed kernel.
// This is O(N log N) vs O(N×M) for direct convolution, beneficial for long kernels.
//
// Overlap-save method:
//  1. The signal is read in blocks of fftSize samples, each overlapping the
//     previous one by kernelLen-1 samples (leading zeros for the first block)
//  2. Each block produces blockSize = fftSize - kernelLen + 1 valid output samples
//  3. The first kernelLen-1 samples of each circular result are discarded
//
// A NaN or Inf anywhere in a block turns the whole block non-finite.
//
// A FFTConvolver owns scratch buffers and must not be shared between goroutines.
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int

	kernelFFT []complex128
	kernelLen int
	scale     float64 // 1/fftSize; gonum's inverse transform is unnormalized

	block    []float64
	spectrum []complex128
	product  []complex128
	result   []float64
}

// NewFFTConvolver creates a convolver for kernel. The kernel is transformed
// once and reused for every call. Returns nil for an empty kernel.
func NewFFTConvolver(kernel []float64) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil
	}

	fftSize := defaultFFTBlockSize
	for fftSize < fftSizeFactor*kernelLen {
		fftSize *= 2
	}

	fft := fourier.NewFFT(fftSize)

	padded := make([]float64, fftSize)
	copy(padded, kernel)
	kernelFFT := fft.Coefficients(nil, padded)

	bins := fftSize/fftHermitianDivisor + 1

	return &FFTConvolver{
		fft:       fft,
		fftSize:   fftSize,
		blockSize: fftSize - kernelLen + 1,
		kernelFFT: kernelFFT,
		kernelLen: kernelLen,
		scale:     1.0 / float64(fftSize),
		block:     make([]float64, fftSize),
		spectrum:  make([]complex128, bins),
		product:   make([]complex128, bins),
		result:    make([]float64, fftSize),
	}
}

// ConvolveFull returns the full linear convolution of signal with the kernel,
// len(signal) + kernelLen - 1 samples.
func (c *FFTConvolver) ConvolveFull(signal []float64) []float64 {
	overlap := c.kernelLen - 1
	outLen := len(signal) + overlap
	out := make([]float64, outLen)

	for outIdx := 0; outIdx < outLen; outIdx += c.blockSize {
		// block[t] is signal[start+t], zero outside the signal.
		start := outIdx - overlap
		clear(c.block)
		lo := max(0, start)
		hi := min(len(signal), start+c.fftSize)
		if lo < hi {
			copy(c.block[lo-start:], signal[lo:hi])
		}

		c.spectrum = c.fft.Coefficients(c.spectrum, c.block)
		c128.Mul(c.product, c.spectrum, c.kernelFFT)
		c.result = c.fft.Sequence(c.result, c.product)

		n := min(c.blockSize, outLen-outIdx)
		f64.Scale(out[outIdx:outIdx+n], c.result[overlap:overlap+n], c.scale)
	}

	return out
}
