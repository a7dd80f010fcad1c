package ltv

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-ltv/internal/testutil"
)

// TestConvolveMultiParallel tests that parallel processing produces correct results.
func TestConvolveMultiParallel(t *testing.T) {
	const (
		channels   = 4
		numSamples = 2000
		taps       = 32
	)
	rng := rand.New(rand.NewPCG(41, 42))
	ir := columns(testutil.RandomResponses(rng, taps, numSamples))

	input := make([][]float64, channels)
	for ch := range channels {
		input[ch] = make([]float64, numSamples)
		for i := range numSamples {
			// Different phases per channel so they are processed independently
			phase := float64(ch) * math.Pi / 4
			input[ch][i] = math.Sin(2*math.Pi*440*float64(i)/48000 + phase)
		}
	}

	outputSeq, err := ConvolveMulti(input, ir, &Options{Parallel: false})
	require.NoError(t, err)
	outputPar, err := ConvolveMulti(input, ir, &Options{Parallel: true})
	require.NoError(t, err)

	require.Len(t, outputSeq, channels)
	require.Len(t, outputPar, channels)

	for ch := range channels {
		// Bit-exact: both modes run the same kernel per signal.
		assert.Equal(t, outputSeq[ch], outputPar[ch], "channel %d", ch)

		single, err := Convolve(input[ch], ir)
		require.NoError(t, err)
		assert.Equal(t, single, outputSeq[ch], "channel %d", ch)
	}
}

// TestConvolveMultiChannelIndependence verifies a silent channel stays silent.
func TestConvolveMultiChannelIndependence(t *testing.T) {
	sys, err := NewTimeInvariant([]float64{0.5, 0.3, 0.2}, 100)
	require.NoError(t, err)

	input := [][]float64{
		make([]float64, 100),
		testutil.RandomSignal(rand.New(rand.NewPCG(43, 44)), 100),
	}

	output, err := sys.ApplyMulti(input, &Options{Parallel: true})
	require.NoError(t, err)
	require.Len(t, output, 2)

	testutil.AssertAllZero(t, output[0])
	testutil.AssertSlicesInDelta(t, testutil.DirectConvolve(input[1], []float64{0.5, 0.3, 0.2}),
		output[1], testutil.DefaultTolerance)
}

// TestConvolveMultiErrorReportsSignal checks the failing signal is named in both modes.
func TestConvolveMultiErrorReportsSignal(t *testing.T) {
	ir := repeated([]float64{1, 1}, 3)
	input := [][]float64{{1, 2}, {1, 2, 3, 4, 5}, {1}}

	for _, parallel := range []bool{false, true} {
		_, err := ConvolveMulti(input, ir, &Options{Strict: true, Parallel: parallel})
		require.ErrorIs(t, err, ErrInvalidShape)
		assert.Contains(t, err.Error(), "signal 1")
	}
}

func TestConvolveMultiEmpty(t *testing.T) {
	output, err := ConvolveMulti(nil, repeated([]float64{1}, 1), &Options{Parallel: true})
	require.NoError(t, err)
	assert.Empty(t, output)

	_, err = ConvolveMulti([][]float64{{1}}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = ConvolveMulti([][]float64{{1}}, repeated([]float64{1}, 1), &Options{Method: 99})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}
