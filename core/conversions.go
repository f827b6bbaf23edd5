// SPDX-License-Identifier: MIT

package core

import (
	"fmt"

	"github.com/katalvlaran/kngen/matrix"
)

// ToMatrix returns the n×n adjacency matrix of g: cell (v,w) is One iff {v,w}
// is an edge. The result is symmetric with a zero diagonal. Graphs whose n²
// exceeds matrix.MaxCells yield matrix.ErrBadShape.
//
// Complexity: O(n² + m).
func (g *Graph) ToMatrix() (*matrix.Dense, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ToMatrix: %w", err)
	}
	for v, nbrs := range g.adj {
		for _, w := range nbrs {
			if err = m.Set(v, w, matrix.One); err != nil {
				return nil, fmt.Errorf("ToMatrix: %w", err)
			}
		}
	}

	return m, nil
}

// FromMatrix builds a graph from a simple undirected adjacency matrix.
// m must be square, loop-free and symmetric (see matrix.ValidateAdjacency).
// Edges are inserted in row-major order of the upper triangle, so neighbour
// lists come out sorted ascending.
//
// Complexity: O(n²).
func FromMatrix(m *matrix.Dense) (*Graph, error) {
	if err := matrix.ValidateAdjacency(m); err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}
	n := m.Rows()
	g, err := NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("FromMatrix: %w", err)
			}
			if v == matrix.Zero {
				continue
			}
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("FromMatrix: %w", err)
			}
		}
	}

	return g, nil
}
