// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a row-major matrix storing elements in a flat slice for
// performance and cache friendliness.
package matrix

import (
	"fmt"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// AtFast returns the element at (row, col) without bounds checking.
// Callers in hot loops (pheromone reads during ant construction, distance
// lookups in local search) use this once indices are already known-valid.
// Complexity: O(1).
func (m *Dense) AtFast(row, col int) float64 {
	return m.data[row*m.c+col]
}

// SetFast assigns v at (row, col) without bounds checking. See AtFast.
// Complexity: O(1).
func (m *Dense) SetFast(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// FillOffDiagonal sets every off-diagonal entry to v, leaving the diagonal
// untouched. Used by pheromone initialization (τ[i][j] = τ₀ for i≠j).
// Complexity: O(r*c).
func (m *Dense) FillOffDiagonal(v float64) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if i == j {
				continue
			}
			m.data[i*m.c+j] = v
		}
	}
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
