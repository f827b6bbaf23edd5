// SPDX-License-Identifier: MIT
// Package: kngen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a vertex count that is negative or not an integer.
// Usage: if errors.Is(err, ErrInvalidInput) { /* report bad n */ }.
var ErrInvalidInput = errors.New("builder: invalid vertex count")

// ErrConstructFailed indicates the target container rejected a vertex or edge
// while the topology was being emitted.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped error with the method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
