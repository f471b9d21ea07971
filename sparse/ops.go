// SPDX-License-Identifier: MIT
// Package sparse: arithmetic kernels (Add, Sub, Mul).
// All kernels validate fail-fast, never mutate their operands, and build the
// result through Set so canonical form holds by construction.

package sparse

import "fmt"

// Operation name constants for uniform error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Use only with non-nil err.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Add computes the element-wise sum C = M + other as a fresh Matrix.
// Stage 1 (Validate): both operands non-nil, identical shapes.
// Stage 2 (Execute): walk the union of stored keys; cells zero in both
// operands are never visited.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return m.addSub(other, +1, opAdd) }

// Sub computes the element-wise difference C = M - other as a fresh Matrix.
// Contract and cost are identical to Add.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return m.addSub(other, -1, opSub) }

// addSub is the shared union-walk kernel behind Add (sign=+1) and Sub
// (sign=-1). A sum that cancels to 0 is dropped by Set, so the result is
// canonical without a sweep.
func (m *Matrix) addSub(other *Matrix, sign int64, op string) (*Matrix, error) {
	if m == nil || other == nil {
		return nil, opErrorf(op, ErrNilMatrix)
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%s: shapes %dx%d vs %dx%d: %w",
			op, m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	res := New(m.rows, m.cols)
	// keys stored in m (value from other may be 0 when absent)
	for k, v := range m.data {
		res.Set(k.Row, k.Col, v+sign*other.data[k])
	}
	// keys stored only in other
	for k, v := range other.data {
		if _, seen := m.data[k]; seen {
			continue
		}
		res.Set(k.Row, k.Col, sign*v)
	}

	return res, nil
}

// Mul performs matrix multiplication C = M × other as a fresh Matrix with
// shape m.Rows() × other.Cols().
// Stage 1 (Validate): operands non-nil, m.Cols() == other.Rows().
// Stage 2 (Execute): for each stored entry (i, k) of m, scan all columns j
// of other, probe other.At(k, j) and accumulate the product into C[i, j].
// Sparsity of m bounds the outer loop; other's column space is scanned
// densely. Partial sums may pass through 0 (entry deleted, then re-added);
// the returned matrix is canonical regardless.
// Summation order does not affect the result: int64 addition is commutative
// and associative (overflow wraps, see package notes).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(m) × other.Cols()).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m == nil || other == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("%s: inner dimensions %dx%d × %dx%d: %w",
			opMul, m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	res := New(m.rows, other.cols)
	var (
		j  int   // column iterator over other
		v2 int64 // probed value other[k, j]
	)
	for k, v1 := range m.data { // (i, k) → v1, nnz(m) iterations
		for j = 0; j < other.cols; j++ {
			v2 = other.At(k.Col, j)
			if v2 == 0 {
				continue // skip zero, nothing to accumulate
			}
			res.Set(k.Row, j, res.At(k.Row, j)+v1*v2)
		}
	}

	return res, nil
}
