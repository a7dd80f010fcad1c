// Package ltv convolves signals with discrete linear time-variant (LTV)
// systems in pure Go.
//
// An LTV system has its own impulse response at every time step. The
// responses are the columns of a k×n matrix: column j is the response to a
// unit impulse at step j, k is the response length and n the number of steps.
// Convolution is written as a matrix-vector product
//
//	y = T · u
//
// where u is the input zero-padded with k-1 samples and T is a band matrix
// whose column j holds response j starting at row j. For a linear
// time-invariant (LTI) system every column is the same and T is a Toeplitz
// matrix; the result is then the ordinary discrete convolution.
//
// # Quick Start
//
// One-shot convolution with a gonum matrix of responses:
//
//	ir := mat.NewDense(2, 3, []float64{
//	    1, 1, 1,
//	    1, 1, 1,
//	})
//	y, err := ltv.Convolve([]float64{1, 2, 3}, ir)
//	// y == [1 3 5 3]
//
// Responses given as one slice per time step:
//
//	y, err := ltv.ConvolveColumns(signal, [][]float64{h0, h1, h2})
//
// For repeated use, build a [System] once. A System is immutable and may be
// shared between goroutines:
//
//	sys, err := ltv.NewSystem(ir)
//	y, err := sys.Apply(signal)
//
// # Response Length
//
// All responses of a system must have the same length. Responses of
// different lengths are rejected with [ErrRaggedResponse]; pad the shorter
// ones with trailing zeros.
//
// # Steps and Signal Length
//
// The output always has k + len(signal) - 1 samples. A system may define
// fewer steps than the signal has samples; the missing steps behave as zero
// responses. Set [Options.Strict] to reject that case with [ErrInvalidShape].
// Steps past the end of the output are ignored.
//
// # Methods
//
// [Options.Method] selects the algorithm:
//
//   - [MethodBanded]: gonum band matrix multiplied through BLAS.
//   - [MethodSIMD]: row-wise SIMD dot products over the same band storage.
//   - [MethodFFT]: overlap-save FFT convolution, time-invariant systems only.
//   - [MethodAuto]: FFT or direct convolution when the system is
//     time-invariant over the whole signal, MethodSIMD otherwise.
//
// [Operator] exposes the band matrix itself.
//
// # Errors
//
// Shape problems are reported as errors wrapping [ErrInvalidShape],
// [ErrEmptyResponse] or [ErrRaggedResponse]; use errors.Is to test them.
// NaN and Inf values are not trapped and propagate through the arithmetic.
package ltv
