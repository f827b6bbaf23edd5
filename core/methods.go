// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// checkVertex returns ErrVertexOutOfRange unless 0 <= v < n.
// Caller must hold at least the read lock.
func (g *Graph) checkVertex(method string, v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%s(%d): %w", method, v, ErrVertexOutOfRange)
	}

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Size returns the number of undirected edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Neighbors returns a copy of N(v) in insertion order.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex("Neighbors", v); err != nil {
		return nil, err
	}

	return slices.Clone(g.adj[v]), nil
}

// Degree returns |N(v)|.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex("Degree", v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// HasEdge reports whether {v,w} is an edge. Out-of-range vertices report false.
//
// Complexity: O(min(deg(v), deg(w))).
func (g *Graph) HasEdge(v, w int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(v, w)
}

func (g *Graph) hasEdgeLocked(v, w int) bool {
	n := len(g.adj)
	if v < 0 || v >= n || w < 0 || w >= n {
		return false
	}
	// scan the shorter list
	if len(g.adj[w]) < len(g.adj[v]) {
		v, w = w, v
	}

	return slices.Contains(g.adj[v], w)
}

// AddEdge inserts the undirected edge {v,w}: w is appended to N(v) and v to N(w).
// Loops and parallel edges are rejected.
//
// Complexity: O(min(deg(v), deg(w))) for the duplicate check.
func (g *Graph) AddEdge(v, w int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex("AddEdge", v); err != nil {
		return err
	}
	if err := g.checkVertex("AddEdge", w); err != nil {
		return err
	}
	if v == w {
		return fmt.Errorf("AddEdge(%d,%d): %w", v, w, ErrLoopNotAllowed)
	}
	if g.hasEdgeLocked(v, w) {
		return fmt.Errorf("AddEdge(%d,%d): %w", v, w, ErrDuplicateEdge)
	}
	g.adj[v] = append(g.adj[v], w)
	g.adj[w] = append(g.adj[w], v)
	g.edges++

	return nil
}

// Mark sets the visited flag of v.
func (g *Graph) Mark(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex("Mark", v); err != nil {
		return err
	}
	g.marked[v] = true

	return nil
}

// Marked reports the visited flag of v. Out-of-range vertices report false.
func (g *Graph) Marked(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.marked) {
		return false
	}

	return g.marked[v]
}

// ResetMarks clears every visited flag.
func (g *Graph) ResetMarks() {
	g.mu.Lock()
	defer g.mu.Unlock()

	clear(g.marked)
}
