// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// filePattern names output documents after the vertex count.
const filePattern = "grafo_%d.txt"

// Grid is the read-only view Write needs. *matrix.Dense satisfies it.
type Grid interface {
	Rows() int
	Cols() int
	At(i, j int) (uint8, error)
}

// FileName returns the conventional document name for an n-vertex graph.
func FileName(n int) string {
	return fmt.Sprintf(filePattern, n)
}

// Write serializes g to w: Rows() lines of Cols() delimiter-separated tokens.
// Output is buffered and flushed before returning.
//
// Complexity: O(r*c) time, O(c) extra space per row.
func Write(w io.Writer, g Grid, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("Write: %w", ErrNilGrid)
	}
	// Resolve the delimiter once; options are validated at construction.
	o := gatherOptions(opts...)

	// Buffer the sink so each row costs one copy, not one syscall per token.
	bw := bufio.NewWriter(w)
	rows, cols := g.Rows(), g.Cols()
	// One reusable line buffer sized for single-digit cells.
	line := make([]byte, 0, cols*(len(o.delim)+1)+1)
	for i := 0; i < rows; i++ { // one output line per row
		line = line[:0]
		for j := 0; j < cols; j++ { // tokens, delimiter only between them
			v, err := g.At(i, j)
			if err != nil {
				return fmt.Errorf("Write: row %d: %w", i, err)
			}
			if j > 0 {
				line = append(line, o.delim...)
			}
			line = strconv.AppendUint(line, uint64(v), 10)
		}
		line = append(line, '\n') // every row, including the last, ends in \n
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("Write: row %d: %w: %w", i, ErrIO, err)
		}
	}
	// Surface buffered write failures here rather than losing them.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: flush: %w: %w", ErrIO, err)
	}

	return nil
}

// WriteFile creates or truncates path and writes g into it. The file is
// closed on every path; a close failure is reported when nothing else failed.
// A partially written file is left in place on error.
func WriteFile(path string, g Grid, opts ...Option) (err error) {
	if g == nil {
		return fmt.Errorf("WriteFile(%s): %w", path, ErrNilGrid)
	}
	// Create truncates an existing file; there is no append mode.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile(%s): close: %w: %w", path, ErrIO, cerr)
		}
	}()

	if err = Write(f, g, opts...); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return nil
}
