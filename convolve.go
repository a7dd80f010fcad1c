package ltv

import (
	"gonum.org/v1/gonum/mat"
)

// Convolve applies the linear time-variant system ir to signal.
//
// Column j of ir is the impulse response active at time step j; all columns
// share the same length k (the number of rows). The signal is zero-padded to
// L = k + len(signal) - 1 samples and multiplied by the L×L band operator
// whose column j holds response j starting at row j:
//
//	y[i] = Σ_j ir[i-j, j] * signal[j],  0 <= i-j < k
//
// The result always has L samples. When every column is the same response h
// and ir has at least len(signal) columns, the result equals the ordinary
// discrete convolution of signal and h.
func Convolve(signal []float64, ir mat.Matrix) ([]float64, error) {
	return ConvolveWith(signal, ir, nil)
}

// ConvolveWith is Convolve with explicit options.
func ConvolveWith(signal []float64, ir mat.Matrix, opts *Options) ([]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s, err := NewSystem(ir)
	if err != nil {
		return nil, err
	}
	return s.apply(signal, opts.orDefault())
}

// ConvolveMulti applies ir to each signal, for example to every channel of a
// multi-channel recording.
func ConvolveMulti(signals [][]float64, ir mat.Matrix, opts *Options) ([][]float64, error) {
	s, err := NewSystem(ir)
	if err != nil {
		return nil, err
	}
	return s.ApplyMulti(signals, opts)
}

// Operator returns the band operator Convolve builds for ir and a signal of
// m samples. See System.Operator.
func Operator(ir mat.Matrix, m int) (*mat.BandDense, error) {
	s, err := NewSystem(ir)
	if err != nil {
		return nil, err
	}
	return s.Operator(m)
}
