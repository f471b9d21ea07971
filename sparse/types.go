// SPDX-License-Identifier: MIT
// Package sparse: core Matrix type, element access and enumeration.

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies a single cell by its zero-based (Row, Col) coordinate.
// Keys compare structurally, so they serve directly as map keys.
type Key struct {
	Row, Col int
}

// Less reports whether k precedes other in the natural (Row, Col) ascending
// order used for deterministic enumeration and textual output.
func (k Key) Less(other Key) bool {
	if k.Row != other.Row {
		return k.Row < other.Row
	}

	return k.Col < other.Col
}

// Matrix is a sparse matrix of int64 values with declared dimensions.
// data holds exactly the non-zero cells; a coordinate absent from data reads
// as 0. Dimensions are advisory: element access is never bounds-checked,
// only the arithmetic preconditions compare shapes.
//
// A Matrix is not safe for concurrent mutation; arithmetic methods never
// mutate their operands, so read-side sharing across goroutines needs no
// coordination.
type Matrix struct {
	rows, cols int           // declared shape
	data       map[Key]int64 // non-zero cells only (canonical form)
}

// New creates an empty rows×cols Matrix.
// Dimensions are stored as given; negative values are accepted but
// semantically meaningless (bounds are advisory throughout).
// Complexity: O(1).
func New(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make(map[Key]int64)}
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored non-zero entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.data) }

// At returns the value at (row, col), or 0 when the cell is unset.
// Out-of-range coordinates are well-defined and read as 0.
// Complexity: O(1) expected.
func (m *Matrix) At(row, col int) int64 {
	return m.data[Key{Row: row, Col: col}]
}

// Set stores v at (row, col). Storing 0 deletes any existing entry instead,
// preserving canonical form (no stored zero ever survives).
// Complexity: O(1) expected.
func (m *Matrix) Set(row, col int, v int64) {
	k := Key{Row: row, Col: col}
	if v != 0 {
		m.data[k] = v
		return
	}
	delete(m.data, k)
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(nnz) time and memory.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, data: make(map[Key]int64, len(m.data))}
	for k, v := range m.data {
		c.data[k] = v
	}

	return c
}

// Keys returns all stored coordinates sorted ascending by (Row, Col).
// The deterministic order backs the canonical text form in codec.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Keys() []Key {
	keys := make([]Key, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys
}

// Equal reports whether m and other share dimensions and an identical
// non-zero entry set. Two nil matrices are equal; nil never equals non-nil.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.data) != len(other.data) {
		return false
	}
	for k, v := range m.data {
		if other.data[k] != v {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer with the canonical text form:
// "rows=R", "cols=C", then one "(r, c, v)" line per entry in (Row, Col)
// ascending order, newline-separated, no trailing newline.
// Complexity: O(nnz·log nnz).
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d\ncols=%d", m.rows, m.cols)
	for _, k := range m.Keys() {
		fmt.Fprintf(&b, "\n(%d, %d, %d)", k.Row, k.Col, m.data[k])
	}

	return b.String()
}
