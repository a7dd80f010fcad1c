package engine

import (
	"github.com/tphakala/go-ltv/internal/simdops"
	"gonum.org/v1/gonum/blas/blas64"
)

// Band is a square lower band matrix stored row by row.
//
// Row i keeps T[i, i-kl] .. T[i, i] contiguously, so T[i, j] lives at
// data[i*stride + kl + j - i]. This is the blas64.Band layout with KU = 0,
// which lets gonum-built operators be shared without copying. Each output
// sample is one dot product between a stored row and a window of the input.
//
// Type parameter F controls the precision of sample processing.
type Band[F simdops.Float] struct {
	size   int
	kl     int
	stride int
	data   []F

	ops *simdops.Ops[F]
}

// NewBand builds the size×size operator whose column j holds responses[j]
// starting at row j. All responses must share one length; columns at or past
// len(responses) are zero and taps that fall below the last row are dropped.
func NewBand[F simdops.Float](responses [][]F, size int) *Band[F] {
	taps := 0
	if len(responses) > 0 {
		taps = len(responses[0])
	}
	kl := max(0, min(taps-1, size-1))
	stride := kl + 1

	b := &Band[F]{
		size:   size,
		kl:     kl,
		stride: stride,
		data:   make([]F, size*stride),
		ops:    simdops.For[F](),
	}

	for j := range min(len(responses), size) {
		for r := 0; r <= kl && j+r < size; r++ {
			b.data[(j+r)*stride+kl-r] = responses[j][r]
		}
	}

	return b
}

// WrapBand shares the storage of a gonum lower band matrix.
// The band must be square with no super-diagonals.
func WrapBand(raw blas64.Band) *Band[float64] {
	if raw.Rows != raw.Cols || raw.KU != 0 {
		panic("engine: WrapBand needs a square lower band matrix")
	}
	return &Band[float64]{
		size:   raw.Rows,
		kl:     raw.KL,
		stride: raw.Stride,
		data:   raw.Data,
		ops:    simdops.For[float64](),
	}
}

// Size returns the number of rows (and columns).
func (b *Band[F]) Size() int {
	return b.size
}

// At returns T[i, j].
func (b *Band[F]) At(i, j int) F {
	d := i - j
	if d < 0 || d > b.kl {
		return 0
	}
	return b.data[i*b.stride+b.kl-d]
}

// MulVec computes dst = T·x. Both slices must have length Size().
func (b *Band[F]) MulVec(dst, x []F) {
	if len(dst) != b.size || len(x) != b.size {
		panic("engine: band dimension mismatch")
	}

	for i := range b.size {
		lo := max(0, i-b.kl)
		rowEnd := i*b.stride + b.kl + 1
		row := b.data[rowEnd-(i-lo+1) : rowEnd]
		dst[i] = b.ops.DotProductUnsafe(row, x[lo:i+1])
	}
}
