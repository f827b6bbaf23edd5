// SPDX-License-Identifier: MIT

package textio

import "errors"

var (
	// ErrIO indicates the sink or source could not be opened, written, read or closed.
	ErrIO = errors.New("textio: i/o failure")

	// ErrMalformed indicates input text that is not a rectangular 0/1 matrix.
	ErrMalformed = errors.New("textio: malformed matrix text")

	// ErrNilGrid indicates a nil Grid was passed to a writer.
	ErrNilGrid = errors.New("textio: nil grid")
)
