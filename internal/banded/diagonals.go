// Package banded builds gonum band matrices from diagonal storage.
//
// The layout follows the classic "matrix from diagonals" constructor: row d
// of the data matrix is laid along diagonal offsets[d], with element (i, j)
// of the result taken from data[d, j] where j-i == offsets[d]. Offset 0 is
// the main diagonal, negative offsets are below it and positive offsets are
// above it. Values that fall outside the result, or beyond the last column
// of data, are dropped.
package banded

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the constructors in this package.
var (
	ErrShape           = errors.New("banded: shape mismatch")
	ErrDuplicateOffset = errors.New("banded: duplicate diagonal offset")
)

// FromDiagonals returns the r×c band matrix whose diagonals are the rows of data.
func FromDiagonals(data mat.Matrix, offsets []int, r, c int) (*mat.BandDense, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil diagonal data", ErrShape)
	}
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %d×%d", ErrShape, r, c)
	}

	rows, cols := data.Dims()
	if len(offsets) != rows {
		return nil, fmt.Errorf("%w: %d offsets for %d diagonals", ErrShape, len(offsets), rows)
	}

	kl, ku, err := bandwidth(offsets, r, c)
	if err != nil {
		return nil, err
	}

	band := mat.NewBandDense(r, c, kl, ku, nil)
	for d, off := range offsets {
		if off < -kl || off > ku {
			// Diagonal lies entirely outside the matrix.
			continue
		}
		last := min(c, cols, r+off)
		for j := max(0, off); j < last; j++ {
			if v := data.At(d, j); v != 0 {
				band.SetBand(j-off, j, v)
			}
		}
	}

	return band, nil
}

// LowerOffsets returns the offsets 0, -1, ..., -(k-1) used to lay k
// impulse-response taps below the main diagonal.
func LowerOffsets(k int) []int {
	offsets := make([]int, k)
	for d := range offsets {
		offsets[d] = -d
	}
	return offsets
}

// bandwidth returns the number of sub- and super-diagonals needed to hold
// offsets inside an r×c matrix. gonum requires kl < r and ku < c.
func bandwidth(offsets []int, r, c int) (kl, ku int, err error) {
	seen := make(map[int]struct{}, len(offsets))
	for _, off := range offsets {
		if _, dup := seen[off]; dup {
			return 0, 0, fmt.Errorf("%w: %d", ErrDuplicateOffset, off)
		}
		seen[off] = struct{}{}

		if off < 0 {
			kl = max(kl, -off)
		} else {
			ku = max(ku, off)
		}
	}
	return min(kl, r-1), min(ku, c-1), nil
}
