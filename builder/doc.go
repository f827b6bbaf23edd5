// SPDX-License-Identifier: MIT

// Package builder constructs complete graphs K_n in the two representations
// used by kngen:
//
//   - Complete(n)       - the n×n 0/1 adjacency matrix (matrix.Dense).
//   - CompleteGraph(n)  - the adjacency-list form (core.Graph).
//
// ParseVertexCount turns textual input (prompt, flag, config) into a vertex
// count, so that every InvalidInput condition surfaces through one sentinel,
// ErrInvalidInput.
//
// Guarantees:
//
//   - Deterministic: identical n yields bit-identical output.
//   - Pure: no I/O, no globals, no randomness.
//   - Never panics on user input; errors wrap sentinels with method context.
//
// Complexity is O(n²) time and space for both representations.
package builder
