// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w context);
// tests and callers check them via errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonBinary indicates a cell value other than 0 or 1.
	ErrNonBinary = errors.New("matrix: cell value must be 0 or 1")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop entry on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
