package ltv

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-ltv/internal/banded"
	"github.com/tphakala/go-ltv/internal/engine"
	"github.com/tphakala/simd/cpu"
	"gonum.org/v1/gonum/mat"
)

// System is a discrete linear time-variant system: one impulse response per
// time step, all of the same length. A System is immutable and safe for
// concurrent use. Create one with NewSystem, NewSystemFromColumns or
// NewTimeInvariant; the zero value has no response and every Apply fails.
type System struct {
	taps  int
	steps int

	// ir holds the responses as columns, taps×steps. nil when steps == 0.
	ir *mat.Dense

	timeInvariant bool
}

// NewSystem creates a system from a matrix whose column j is the impulse
// response active at time step j. The matrix is copied.
func NewSystem(ir mat.Matrix) (*System, error) {
	if ir == nil {
		return nil, fmt.Errorf("%w: impulse-response matrix is nil", ErrInvalidShape)
	}

	taps, steps := ir.Dims()
	if taps == 0 {
		return nil, fmt.Errorf("%w: matrix has no rows", ErrEmptyResponse)
	}

	s := &System{taps: taps, steps: steps}
	if steps > 0 {
		s.ir = mat.DenseCopyOf(ir)
	}
	s.timeInvariant = s.detectTimeInvariance()

	return s, nil
}

// NewSystemFromColumns creates a system from one response per time step.
// Every response must have the same length; pad shorter responses with
// zeros before calling.
func NewSystemFromColumns(responses [][]float64) (*System, error) {
	taps, err := checkResponses(responses)
	if err != nil {
		return nil, err
	}

	steps := len(responses)
	data := make([]float64, taps*steps)
	for j, h := range responses {
		for r, v := range h {
			data[r*steps+j] = v
		}
	}

	sys := &System{taps: taps, steps: steps, ir: mat.NewDense(taps, steps, data)}
	sys.timeInvariant = sys.detectTimeInvariance()
	return sys, nil
}

// NewTimeInvariant creates a system that applies h at each of steps time steps.
func NewTimeInvariant(h []float64, steps int) (*System, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: response has no taps", ErrEmptyResponse)
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: negative step count %d", ErrInvalidShape, steps)
	}
	if steps == 0 {
		return &System{taps: len(h), timeInvariant: true}, nil
	}

	ir := mat.NewDense(len(h), steps, nil)
	for r, v := range h {
		for j := range steps {
			ir.Set(r, j, v)
		}
	}
	return &System{taps: len(h), steps: steps, ir: ir, timeInvariant: true}, nil
}

// checkResponses returns the common response length.
func checkResponses[F float32 | float64](responses [][]F) (int, error) {
	if len(responses) == 0 {
		return 0, fmt.Errorf("%w: no responses", ErrEmptyResponse)
	}
	taps := len(responses[0])
	if taps == 0 {
		return 0, fmt.Errorf("%w: response 0 has no taps", ErrEmptyResponse)
	}
	for j, h := range responses {
		if len(h) != taps {
			return 0, fmt.Errorf("%w: response %d has %d taps, response 0 has %d",
				ErrRaggedResponse, j, len(h), taps)
		}
	}
	return taps, nil
}

func (s *System) detectTimeInvariance() bool {
	for j := 1; j < s.steps; j++ {
		for r := range s.taps {
			if s.ir.At(r, j) != s.ir.At(r, 0) {
				return false
			}
		}
	}
	return true
}

// ResponseLength returns the number of taps per impulse response.
func (s *System) ResponseLength() int {
	return s.taps
}

// Steps returns the number of time steps with a defined response.
func (s *System) Steps() int {
	return s.steps
}

// IsTimeInvariant reports whether every step has the same response.
func (s *System) IsTimeInvariant() bool {
	return s.timeInvariant
}

// Response returns a copy of the response active at step j.
func (s *System) Response(j int) []float64 {
	if j < 0 || j >= s.steps {
		panic(fmt.Sprintf("ltv: step %d out of range [0, %d)", j, s.steps))
	}
	return mat.Col(nil, j, s.ir)
}

// Matrix returns the responses as a taps×steps matrix, or nil for a system
// with no steps. The result must not be modified.
func (s *System) Matrix() mat.Matrix {
	if s.ir == nil {
		return nil
	}
	return s.ir
}

// OutputLength returns the output length for an input of m samples.
func (s *System) OutputLength(m int) int {
	return max(0, s.taps+m-1)
}

// Operator returns the L×L band matrix T, L = OutputLength(m), with
// T[i, j] = response_j[i-j] for 0 <= i-j < taps and j < Steps(), zero
// elsewhere. Returns nil when L is zero.
func (s *System) Operator(m int) (*mat.BandDense, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w: negative signal length %d", ErrInvalidShape, m)
	}

	size := s.OutputLength(m)
	if size == 0 {
		return nil, nil
	}
	if s.steps == 0 {
		return mat.NewBandDense(size, size, 0, 0, nil), nil
	}

	t, err := banded.FromDiagonals(s.ir, banded.LowerOffsets(s.taps), size, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	return t, nil
}

// Apply convolves signal with the system using default options.
func (s *System) Apply(signal []float64) ([]float64, error) {
	return s.ApplyWith(signal, nil)
}

// ApplyWith convolves signal with the system. The result has
// OutputLength(len(signal)) samples.
func (s *System) ApplyWith(signal []float64, opts *Options) ([]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return s.apply(signal, opts.orDefault())
}

func (s *System) apply(signal []float64, opts *Options) ([]float64, error) {
	if s.taps == 0 {
		return nil, fmt.Errorf("%w: system has no response", ErrEmptyResponse)
	}

	m := len(signal)
	if opts.Strict && s.steps < m {
		return nil, fmt.Errorf("%w: %d steps for %d input samples", ErrInvalidShape, s.steps, m)
	}

	size := s.OutputLength(m)
	if size == 0 {
		return []float64{}, nil
	}

	switch opts.Method {
	case MethodBanded:
		return s.applyBanded(signal, size)
	case MethodSIMD:
		return s.applySIMD(signal, size)
	case MethodFFT:
		return s.applyFFT(signal, size)
	default:
		if s.coversSignal(m) {
			return engine.ConvolveFullFFT(signal, s.Response(0)), nil
		}
		return s.applySIMD(signal, size)
	}
}

// coversSignal reports whether the system reduces to plain convolution for
// m input samples: one response, repeated for every nonzero input.
func (s *System) coversSignal(m int) bool {
	return s.timeInvariant && s.steps > 0 && s.steps >= m
}

func (s *System) applyBanded(signal []float64, size int) ([]float64, error) {
	t, err := s.Operator(len(signal))
	if err != nil {
		return nil, err
	}

	y := mat.NewVecDense(size, nil)
	y.MulVec(t, mat.NewVecDense(size, padSignal(signal, size)))
	return y.RawVector().Data, nil
}

func (s *System) applySIMD(signal []float64, size int) ([]float64, error) {
	t, err := s.Operator(len(signal))
	if err != nil {
		return nil, err
	}

	out := make([]float64, size)
	engine.WrapBand(t.RawBand()).MulVec(out, padSignal(signal, size))
	return out, nil
}

func (s *System) applyFFT(signal []float64, size int) ([]float64, error) {
	if !s.timeInvariant {
		return nil, fmt.Errorf("%w: FFT method needs one shared response", ErrNotTimeInvariant)
	}
	if s.steps < len(signal) {
		return nil, fmt.Errorf("%w: FFT method needs one step per input sample, have %d for %d",
			ErrInvalidShape, s.steps, len(signal))
	}
	if s.steps == 0 {
		return make([]float64, size), nil
	}
	return engine.NewFFTConvolver(s.Response(0)).ConvolveFull(signal), nil
}

// padSignal returns signal extended with zeros to size samples.
func padSignal(signal []float64, size int) []float64 {
	padded := make([]float64, size)
	copy(padded, signal)
	return padded
}

// ApplyMulti convolves each signal with the system. With opts.Parallel the
// signals are processed concurrently; results are identical either way.
func (s *System) ApplyMulti(signals [][]float64, opts *Options) ([][]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.orDefault()

	if opts.Parallel && len(signals) > 1 {
		return s.applyParallel(signals, opts)
	}

	outputs := make([][]float64, len(signals))
	for i, signal := range signals {
		out, err := s.apply(signal, opts)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
		outputs[i] = out
	}
	return outputs, nil
}

func (s *System) applyParallel(signals [][]float64, opts *Options) ([][]float64, error) {
	outputs := make([][]float64, len(signals))
	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	for i := range signals {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			out, err := s.apply(signals[idx], opts)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("signal %d: %w", idx, err)
				}
				errMu.Unlock()
				return
			}
			outputs[idx] = out
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return outputs, nil
}

// Info describes a system.
type Info struct {
	// ResponseLength is the number of taps per impulse response.
	ResponseLength int

	// Steps is the number of time steps with a defined response.
	Steps int

	// TimeInvariant is true when all steps share one response.
	TimeInvariant bool

	// NonZeros is the number of nonzero taps across all stored responses
	// (the taps×steps matrix), before truncation to any operator size.
	NonZeros int

	// MemoryUsage is the approximate size of the stored responses in bytes.
	MemoryUsage int64

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// Info returns information about the system.
func (s *System) Info() Info {
	nonZeros := 0
	for j := range s.steps {
		for r := range s.taps {
			if s.ir.At(r, j) != 0 {
				nonZeros++
			}
		}
	}

	return Info{
		ResponseLength: s.taps,
		Steps:          s.steps,
		TimeInvariant:  s.timeInvariant,
		NonZeros:       nonZeros,
		MemoryUsage:    int64(s.taps*s.steps) * bytesPerFloat64,
		SIMDType:       cpu.Info(),
	}
}
