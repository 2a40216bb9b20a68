// Package cmat: Dense is a concrete, row-major complex matrix, storing
// elements in a flat slice for performance and cache friendliness.
package cmat

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]complex128, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows builds a Dense from a row-major slice of rows.
// All rows must have the same, non-zero length; inputs are copied.
// Errors: ErrBadShape (no rows / empty rows), ErrRaggedRows.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]complex128) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])

	// Validate rectangularity before allocation
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrRaggedRows
		}
	}

	// Copy row by row into flat storage
	m := &Dense{r: r, c: c, data: make([]complex128, r*c)}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape when n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Zeros returns an r×c all-zero matrix. Thin alias over NewDense kept for
// call-site readability in constructive code.
func Zeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]complex128, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RawData returns the backing slice in row-major order (length Rows*Cols).
// The slice is shared with the receiver: mutations are visible both ways.
// Intended for kernel packages that have already validated shapes; general
// callers should prefer At/Set, which bounds-check.
func (m *Dense) RawData() []complex128 { return m.data }

// IsSquare reports whether the matrix is square. Complexity: O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsVector reports whether the matrix is a single column or a single row.
// Complexity: O(1).
func (m *Dense) IsVector() bool { return m.c == 1 || m.r == 1 }

// Equal reports whether m and other agree entrywise within tol in modulus.
// A nil operand or a shape mismatch yields false, never an error: Equal is
// a predicate, not a kernel.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense, tol float64) bool {
	if m == nil || other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	n := len(m.data)
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		d := m.data[idx] - other.data[idx]
		if real(d)*real(d)+imag(d)*imag(d) > tol*tol {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")
		for j = 0; j < m.c; j++ { // iterate over columns
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
