// Package testutil provides reusable test helpers for the convolution tests.
package testutil

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	FFTTolerance     = 1e-9
	Float32Tolerance = 1e-4
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertSlicesInDelta verifies that two slices have equal length and agree
// element-wise within tolerance.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"index %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertAllZero verifies that every element is exactly zero.
func AssertAllZero(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 {
			return assert.Fail(t, "non-zero value", "s[%d]=%v", i, v)
		}
	}
	return true
}

// DirectConvolve is the textbook O(N*M) full convolution.
func DirectConvolve(signal, kernel []float64) []float64 {
	if len(kernel) == 0 {
		return nil
	}
	out := make([]float64, len(signal)+len(kernel)-1)
	for i, x := range signal {
		for j, h := range kernel {
			out[i+j] += x * h
		}
	}
	return out
}

// DirectLTV applies time-varying responses with the windowed sum
// y[i] = Σ_j responses[j][i-j] * signal[j]. responses[j] is the response
// active at step j; steps without a response contribute nothing.
func DirectLTV(signal []float64, responses [][]float64, taps int) []float64 {
	outLen := max(0, len(signal)+taps-1)
	out := make([]float64, outLen)
	for j := range min(len(signal), len(responses)) {
		for r := range taps {
			out[j+r] += responses[j][r] * signal[j]
		}
	}
	return out
}

// RandomSignal returns n samples uniformly distributed in [-1, 1).
func RandomSignal(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

// RandomResponses returns steps responses of taps samples each.
func RandomResponses(rng *rand.Rand, taps, steps int) [][]float64 {
	responses := make([][]float64, steps)
	for j := range responses {
		responses[j] = RandomSignal(rng, taps)
	}
	return responses
}
