// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for structural checks on adjacency matrices.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Square → Diagonal → Symmetry.
//  - All checks are pure and allocate nothing beyond the error value.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures rows == cols.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateZeroDiagonal ensures m is square and every (i,i) cell is Zero.
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+i] != Zero {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures m is square and m[i][j] == m[j][i] for all i<j.
// Scans the upper triangle only.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateAdjacency checks that m is a simple undirected adjacency matrix:
// non-nil, square, loop-free and symmetric.
func ValidateAdjacency(m *Dense) error {
	// ValidateZeroDiagonal covers NotNil and Square.
	if err := ValidateZeroDiagonal(m); err != nil {
		return err
	}

	return ValidateSymmetric(m)
}

// IsComplete reports whether m is the adjacency matrix of a complete graph:
// a valid adjacency matrix with every off-diagonal cell set.
// Complexity: O(n²).
func IsComplete(m *Dense) bool {
	if ValidateAdjacency(m) != nil {
		return false
	}

	return m.Ones() == m.r*(m.r-1)
}
