// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell values. Kept as named constants so call sites never spell 0/1 inline.
const (
	Zero uint8 = 0
	One  uint8 = 1
)

// MaxCells caps rows*cols for a single Dense (2 GiB of cells, K_46340).
// Larger shapes are rejected with ErrBadShape before anything is allocated.
const MaxCells = 1<<31 - 1

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of 0/1 cells.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []uint8 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero dimensions are allowed; negative ones, and shapes whose cell count
// exceeds MaxCells (including products that would overflow int), yield ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Stage 1 (Validate): sign first, then the cell count via division so
	// rows*cols is never computed before it is known to fit.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if cols != 0 && rows > MaxCells/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): more than %d cells: %w", rows, cols, MaxCells, ErrBadShape)
	}

	// Stage 2 (Prepare): one flat allocation, zero-valued.
	return &Dense{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix. A nil matrix has zero rows.
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns in the matrix. A nil matrix has zero columns.
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (uint8, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). v must be Zero or One.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v uint8) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v > One {
		return denseErrorf("Set", row, col, ErrNonBinary)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]uint8, error) {
	if m == nil {
		return nil, denseErrorf("Row", i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]uint8, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	data := make([]uint8, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and cells.
// Two nil matrices are equal.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Ones counts the cells set to One.
func (m *Dense) Ones() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, v := range m.data {
		n += int(v)
	}

	return n
}

// String renders the matrix in bracketed rows, e.g. "[[0 1]\n [1 0]]".
// An empty matrix renders as "[]".
func (m *Dense) String() string {
	if m == nil || m.r == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(m.data[i*m.c+j])))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
