// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Row/Col: O(c)/O(r); Clone/Equal/Data: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "NewDense" // ctor tag used in error wrappers
	ctxAt  = "At"       // method tag used in error wrappers
	ctxSet = "Set"      // method tag used in error wrappers
	ctxRow = "Row"      // method tag used in error wrappers
	ctxCol = "Col"      // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable "Dense.<method>(row,col): <sentinel>" shape; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection (see options.go).
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//   - data == nil yields a zero matrix; otherwise data is COPIED (row-major),
//     so the caller keeps ownership of its slice.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape.
//   - Stage 2: validate len(data)==rows*cols when data is supplied.
//   - Stage 3: resolve options; enforce the finite-only policy on data when enabled.
//   - Stage 4: allocate and copy.
//
// Behavior highlights:
//   - A wrong data length is a hard failure, never a silent zero-fill.
//
// Errors:
//   - ErrInvalidShape (shape or data length), ErrNaNInf (policy ON, non-finite data).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidShape)
	}
	n := rows * cols
	if data != nil && len(data) != n {
		return nil, fmt.Errorf("%s(%d,%d): data length %d: %w", ctxNew, rows, cols, len(data), ErrInvalidShape)
	}
	o := gatherOptions(opts...)

	buf := make([]float64, n) // make() zero-fills deterministically
	if data != nil {
		if o.validateNaNInf {
			for idx, v := range data {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, denseErrorf(ctxNew, idx/cols, idx%cols, ErrNaNInf)
				}
			}
		}
		copy(buf, data)
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewZeros returns an r×c zero matrix with default options.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols, nil)
}

// newResult allocates the destination of a derived operation.
// Shapes are already validated by the caller; policy is inherited from the
// left operand when it is a *Dense.
func newResult(rows, cols int, like Matrix) *Dense {
	policy := DefaultValidateNaNInf
	if d, ok := like.(*Dense); ok {
		policy = d.validateNaNInf
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: policy}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Size returns rows*cols.
func (m *Dense) Size() int { return len(m.data) }

// Data returns a row-major copy of the backing storage.
// The matrix keeps exclusive ownership of its buffer; writes to the returned
// slice are not reflected in m.
// Complexity: O(r*c).
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - The only element-level in-place mutator.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrIndexOutOfBounds for bounds; ErrNaNInf for invalid numbers (policy ON).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a freshly allocated copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a freshly allocated copy of column j.
// Complexity: O(r), strided reads.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Equal reports whether other has the same shape and exactly equal elements
// (float ==, so NaN never equals NaN). A nil other is never equal.
// MAIN DESCRIPTION:
//   - Value equality; numeric policy flags are not compared.
//
// Complexity:
//   - Time O(r*c), Space O(1). Early exit on the first difference.
func (m *Dense) Equal(other Matrix) bool {
	if m == nil || other == nil {
		return false
	}
	if d, ok := other.(*Dense); ok && d == nil {
		return false
	}
	if m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	if d, ok := other.(*Dense); ok {
		for idx := range m.data {
			if m.data[idx] != d.data[idx] {
				return false
			}
		}
		return true
	}

	// Generic fallback via At, fixed i→j order.
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix as rows of space-separated values, one row per
// line, each line newline-terminated ("1 2\n3 4\n").
// Values use the shortest representation that round-trips ('g', -1).
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// T is the method form of Transpose for *Dense receivers.
func (m *Dense) T() *Dense {
	return transposeDense(m)
}

// Map is the method form of Apply for *Dense receivers.
func (m *Dense) Map(f ElementFunc) (*Dense, error) {
	return applyDense(m, f)
}
