package ltv

import (
	"github.com/tphakala/go-ltv/internal/engine"
)

// ConvolveColumns is Convolve with the responses given one slice per time step.
func ConvolveColumns(signal []float64, responses [][]float64) ([]float64, error) {
	s, err := NewSystemFromColumns(responses)
	if err != nil {
		return nil, err
	}
	return s.Apply(signal)
}

// ConvolveLTI returns the full discrete convolution of signal and h,
// len(signal)+len(h)-1 samples. Long responses use FFT convolution.
func ConvolveLTI(signal, h []float64) ([]float64, error) {
	if len(h) == 0 {
		return nil, ErrEmptyResponse
	}
	return engine.ConvolveFullFFT(signal, h), nil
}

// ConvolveFloat32 is ConvolveColumns in float32 precision.
func ConvolveFloat32(signal []float32, responses [][]float32) ([]float32, error) {
	taps, err := checkResponses(responses)
	if err != nil {
		return nil, err
	}

	size := len(signal) + taps - 1
	padded := make([]float32, size)
	copy(padded, signal)

	out := make([]float32, size)
	engine.NewBand(responses, size).MulVec(out, padded)
	return out, nil
}
