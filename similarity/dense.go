package similarity

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("similarity: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("similarity: index out of bounds")

// Dense is a row-major matrix of float64 values, sized for the small,
// dense term/doc and doc/doc matrices this package builds. It is not a
// general-purpose linear algebra type; it exists so NameIndex doesn't
// thread raw [][]float64 slices through its construction.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a rows x cols matrix of zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }

func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return 0, fmt.Errorf("similarity: At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return row*d.cols + col, nil
}

// At returns the value at (row, col).
func (d *Dense) At(row, col int) float64 {
	idx, err := d.indexOf(row, col)
	if err != nil {
		panic(err)
	}
	return d.data[idx]
}

// Set assigns v at (row, col).
func (d *Dense) Set(row, col int, v float64) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		panic(err)
	}
	d.data[idx] = v
}

// Column returns a copy of column c as a length-Rows() slice.
func (d *Dense) Column(c int) []float64 {
	out := make([]float64, d.rows)
	for r := 0; r < d.rows; r++ {
		out[r] = d.At(r, c)
	}
	return out
}
