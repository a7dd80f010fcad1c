package engine

// FFT convolution constants.
const (
	// MinKernelForFFT is the shortest kernel that takes the FFT path.
	// Below it direct SIMD convolution wins; the crossover with gonum FFT
	// sits around 400-500 taps.
	MinKernelForFFT = 400

	// Default FFT block size (power of 2 for efficiency)
	defaultFFTBlockSize = 512

	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2

	// fftSizeFactor sizes the FFT relative to the kernel: fftSize >= 2*kernelLen
	// keeps at least half of every block as valid output.
	fftSizeFactor = 2
)
