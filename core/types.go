// SPDX-License-Identifier: MIT

// Package core defines Graph, a small undirected adjacency-list container
// over the integer vertices 0..n-1.
//
// Each vertex owns a neighbour list N(v) kept in insertion order and a
// "visited" mark that traversal code can set and clear. The container
// itself ships no traversal: it is the storage layer that graph
// generators fill and matrix conversions read.
//
// All methods are safe for concurrent use; mutations take the write lock,
// queries the read lock.
//
// Errors:
//
//	ErrInvalidOrder      - negative vertex count.
//	ErrVertexOutOfRange  - vertex outside [0, n).
//	ErrLoopNotAllowed    - self-loop requested.
//	ErrDuplicateEdge     - edge {v,w} already present.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidOrder indicates a negative vertex count.
	ErrInvalidOrder = errors.New("core: vertex count must be >= 0")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Graph is a simple undirected graph stored as adjacency lists.
type Graph struct {
	mu sync.RWMutex

	// adj[v] lists the neighbours of v in insertion order.
	adj [][]int

	// marked[v] is the per-vertex visited flag.
	marked []bool

	// edges counts undirected edges (each {v,w} once).
	edges int
}

// NewGraph returns a graph with n isolated vertices 0..n-1.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrInvalidOrder
	}

	return &Graph{
		adj:    make([][]int, n),
		marked: make([]bool, n),
	}, nil
}
