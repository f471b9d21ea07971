// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All arithmetic methods return these sentinels (possibly wrapped with
// operation context via fmt.Errorf("...: %w", ...)); tests match them with
// errors.Is. No user-triggered condition panics.

package sparse

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// differing shapes for Add/Sub, or a.Cols() != b.Rows() for Mul.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// passed to an operation that requires a concrete matrix.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
