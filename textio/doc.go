// SPDX-License-Identifier: MIT

// Package textio serializes 0/1 matrices as plain delimited text.
//
// Format (one document per matrix):
//
//	0 1 1
//	1 0 1
//	1 1 0
//
//   - One line per row, terminated by "\n".
//   - Cells rendered as decimal tokens separated by a single delimiter
//     (a space by default, see WithDelimiter); no trailing delimiter.
//   - No header and nothing after the final newline. A 0×0 matrix is the
//     empty document.
//
// Write accepts any Grid, so matrices that are not complete graphs, or not
// square, serialize the same way. Read is the inverse and also accepts the
// legacy layout with one trailing delimiter per row and CRLF line endings.
//
// I/O failures wrap ErrIO together with the underlying error, so both
// errors.Is(err, textio.ErrIO) and errors.Is(err, fs.ErrPermission) hold.
package textio
