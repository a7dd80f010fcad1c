package ltv

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the convolution functions.
var (
	// ErrInvalidShape indicates the signal and impulse responses cannot form
	// a banded operator.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrEmptyResponse indicates impulse responses of zero length.
	ErrEmptyResponse = errors.New("empty impulse response")

	// ErrRaggedResponse indicates impulse responses of differing lengths.
	ErrRaggedResponse = errors.New("impulse responses differ in length")

	// ErrNotTimeInvariant indicates an LTI-only method was requested for a
	// time-variant system.
	ErrNotTimeInvariant = errors.New("system is not time-invariant")

	// ErrInvalidOptions indicates invalid options.
	ErrInvalidOptions = errors.New("invalid options")
)

// Method selects how the operator is applied to the signal.
// All methods produce the same result within floating-point tolerance.
type Method int

const (
	// MethodAuto uses FFT or direct convolution for time-invariant systems
	// and MethodSIMD otherwise.
	MethodAuto Method = iota

	// MethodBanded builds the operator as a gonum band matrix and multiplies
	// it with the padded signal through BLAS.
	MethodBanded

	// MethodSIMD walks the band storage row by row with SIMD dot products.
	MethodSIMD

	// MethodFFT uses overlap-save FFT convolution. Only valid for
	// time-invariant systems with at least one step per input sample.
	// A NaN or Inf input spreads over its whole FFT block instead of only
	// the outputs it feeds; MethodAuto avoids FFT for such inputs.
	MethodFFT
)

var methodNames = [...]string{
	MethodAuto:   "auto",
	MethodBanded: "banded",
	MethodSIMD:   "simd",
	MethodFFT:    "fft",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod returns the Method named s (case-insensitive).
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(m), nil
		}
	}
	return MethodAuto, fmt.Errorf("%w: unknown method %q", ErrInvalidOptions, s)
}

// Options configures a convolution. A nil *Options means defaults.
type Options struct {
	// Method selects the algorithm. The zero value is MethodAuto.
	Method Method

	// Strict rejects systems with fewer steps than input samples.
	// By default the missing steps act as zero impulse responses.
	Strict bool

	// Parallel processes independent signals concurrently in ApplyMulti
	// and ConvolveMulti. Has no effect on a single signal.
	Parallel bool
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.Method < MethodAuto || o.Method > MethodFFT {
		return fmt.Errorf("%w: unknown method %v", ErrInvalidOptions, o.Method)
	}
	return nil
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return &Options{}
	}
	return o
}
