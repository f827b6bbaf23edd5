// SPDX-License-Identifier: MIT
// Package: kngen/builder
//
// complete.go — Complete(n) and CompleteGraph(n).
//
// Contract:
//   • 0 ≤ n ≤ MaxVertices (else ErrInvalidInput). n = 0 is the empty graph.
//     The upper bound keeps n² within matrix.MaxCells, so a count that is
//     not representable as a matrix is rejected before any allocation.
//   • Cell (i,j) is 1 iff i ≠ j; the diagonal stays 0 (no self-loops).
//   • CompleteGraph emits each unordered pair {i,j}, i<j, exactly once in
//     lexicographic order, so neighbour lists are sorted ascending.
//
// Complexity:
//   • Time: O(n²).
//   • Space: O(n²) for the matrix, O(n + m) for the adjacency list.

package builder

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/kngen/core"
	"github.com/katalvlaran/kngen/matrix"
)

// Method tags used in error context, plus the parameter minimum.
const (
	methodComplete      = "Complete"
	methodCompleteGraph = "CompleteGraph"
	methodParse         = "ParseVertexCount"
	minCompleteNodes    = 0
)

// MaxVertices is the largest n accepted by Complete, CompleteGraph and
// ParseVertexCount: the largest n with n² ≤ matrix.MaxCells.
const MaxVertices = 46340

// validateVertexCount rejects n outside [minCompleteNodes, MaxVertices].
func validateVertexCount(method string, n int) error {
	// Lower bound: K_n is defined for n ≥ 0.
	if n < minCompleteNodes {
		return builderErrorf(method, ErrInvalidInput, "n=%d < min=%d", n, minCompleteNodes)
	}
	// Upper bound: n² cells must fit a single Dense.
	if n > MaxVertices {
		return builderErrorf(method, ErrInvalidInput, "n=%d > max=%d (not representable)", n, MaxVertices)
	}

	return nil
}

// Complete returns the n×n adjacency matrix of the complete graph K_n.
func Complete(n int) (*matrix.Dense, error) {
	// Early parameter validation: both bounds, before allocating.
	if err := validateVertexCount(methodComplete, n); err != nil {
		return nil, err
	}

	// Allocate the zeroed n×n grid; the diagonal is therefore already 0.
	m, err := matrix.NewDense(n, n)
	if err != nil {
		// A shape the matrix layer refuses is still an input problem.
		if errors.Is(err, matrix.ErrBadShape) {
			return nil, builderErrorf(methodComplete, ErrInvalidInput, "n=%d not representable: %v", n, err)
		}
		return nil, builderErrorf(methodComplete, ErrConstructFailed, "NewDense: %v", err)
	}

	// Fill every off-diagonal cell in row-major order (deterministic).
	for i := 0; i < n; i++ { // row index
		for j := 0; j < n; j++ { // column index
			if i == j {
				continue // no self-loops
			}
			if err = m.Set(i, j, matrix.One); err != nil {
				return nil, builderErrorf(methodComplete, ErrConstructFailed, "Set(%d,%d): %v", i, j, err)
			}
		}
	}

	// Success: symmetric, zero diagonal, ones elsewhere.
	return m, nil
}

// CompleteGraph returns K_n as an adjacency-list core.Graph.
func CompleteGraph(n int) (*core.Graph, error) {
	// Same bounds as Complete so both representations agree on valid n.
	if err := validateVertexCount(methodCompleteGraph, n); err != nil {
		return nil, err
	}

	// n isolated vertices 0..n-1.
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, builderErrorf(methodCompleteGraph, ErrConstructFailed, "NewGraph: %v", err)
	}

	// Emit each unordered pair {i,j} with i<j once; the graph mirrors it.
	for i := 0; i < n; i++ { // left endpoint
		for j := i + 1; j < n; j++ { // right endpoint (strictly greater)
			if err = g.AddEdge(i, j); err != nil {
				return nil, builderErrorf(methodCompleteGraph, ErrConstructFailed, "AddEdge(%d,%d): %v", i, j, err)
			}
		}
	}

	return g, nil
}

// ParseVertexCount parses a decimal vertex count, ignoring surrounding
// whitespace. Non-integer, out-of-range and negative values yield ErrInvalidInput.
func ParseVertexCount(s string) (int, error) {
	// Whitespace (including the prompt's trailing newline) is not significant.
	t := strings.TrimSpace(s)
	n, err := strconv.Atoi(t)
	if err != nil {
		// Covers "abc", "3.5", "" and values overflowing int.
		return 0, builderErrorf(methodParse, ErrInvalidInput, "%q is not an integer", t)
	}
	// Range checks shared with the constructors.
	if err = validateVertexCount(methodParse, n); err != nil {
		return 0, err
	}

	return n, nil
}
