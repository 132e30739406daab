// SPDX-License-Identifier: MIT

// Package matrix provides the dense all-pairs distance table and a
// Floyd–Warshall closure used to cross-check it.
//
// Dense stores float64 values row-major in one flat slice. +Inf means
// "no path". Row(i) exposes row i without copying, which is how a single
// source's distance vector is handed to the path extractor.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors.
var (
	// ErrBadShape is returned when requested dimensions are non-positive or
	// exceed MaxElements cells.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates a row of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals m[i][j] and m[j][i] differ by more than eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrMismatch signals two matrices differ by more than eps at some cell.
	ErrMismatch = errors.New("matrix: matrices differ")
)

// MaxElements bounds rows*cols for NewDense (8 GiB of float64).
const MaxElements = 1 << 30

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 || rows > MaxElements/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDistanceTable creates an n×n matrix with a zero diagonal and +Inf
// everywhere else.
func NewDistanceTable(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	for i := range m.data {
		m.data[i] = inf
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice sharing the matrix storage. Callers must not
// modify it. Different rows never overlap, so goroutines may each write their
// own row through SetRow concurrently.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// SetRow copies vals into row i. len(vals) must equal Cols().
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return fmt.Errorf("Dense.SetRow(%d): len %d != cols %d: %w", i, len(vals), m.c, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
