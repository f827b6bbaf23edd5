// Package kngen generates complete graphs K_n and persists their adjacency
// matrices as plain text.
//
// Layout:
//
//	matrix/          — Dense 0/1 matrix, structural validators
//	builder/         — Complete(n) matrix and CompleteGraph(n) adjacency list
//	core/            — adjacency-list Graph with visited marks, matrix conversions
//	textio/          — delimited text Write/Read, grafo_<n>.txt naming
//	generate/        — build-then-write pipeline with stage-tagged errors
//	internal/config  — YAML configuration
//	cmd/kngen        — command-line entry point
//
// Quick example (K_3):
//
//	0 1 1
//	1 0 1
//	1 1 0
//
// SPDX-License-Identifier: MIT
package kngen
