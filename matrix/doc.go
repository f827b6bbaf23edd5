// SPDX-License-Identifier: MIT

// Package matrix defines Dense, the 0/1 adjacency matrix shared by the
// builder, core and textio packages.
//
// A Dense is a rows×cols grid of uint8 cells stored row-major in one flat
// slice. Every cell holds 0 or 1; Set rejects anything else, so a Dense is
// binary by construction. Zero-sized matrices (0×0, 0×c, r×0) are legal and
// describe the empty graph.
//
// Structural checks for adjacency use live in validators.go:
//
//	ValidateSquare        - rows == cols
//	ValidateZeroDiagonal  - no self-loops
//	ValidateSymmetric     - undirected
//	ValidateAdjacency     - all of the above, in that order
//
// Errors are package-level sentinels (errors.go); callers branch with
// errors.Is. No exported function panics on user input.
package matrix
