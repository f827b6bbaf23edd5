// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/kngen/matrix"
)

// Read parses a document produced by Write back into a matrix.
// Every row must hold the same number of 0/1 tokens. A single trailing
// delimiter per row and "\r\n" endings are tolerated. Empty input yields a
// 0×0 matrix.
//
// Complexity: O(r*c).
func Read(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	br := bufio.NewReader(r)

	var (
		rows [][]uint8
		cols = -1
	)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Read: line %d: %w: %w", lineNo, ErrIO, err)
		}
		eof := err != nil
		if eof && line == "" {
			break
		}

		row, perr := parseRow(line, o.delim)
		if perr != nil {
			return nil, fmt.Errorf("Read: line %d: %w", lineNo, perr)
		}
		if cols < 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("Read: line %d: %d tokens, want %d: %w", lineNo, len(row), cols, ErrMalformed)
		}
		rows = append(rows, row)
		if eof {
			break
		}
	}
	if cols < 0 {
		cols = 0
	}

	m, err := matrix.NewDense(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for i, row := range rows {
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Read: %w", err)
			}
		}
	}

	return m, nil
}

// parseRow splits one line into 0/1 cells.
func parseRow(line, delim string) ([]uint8, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	line = strings.TrimSuffix(line, delim)
	if line == "" {
		return []uint8{}, nil
	}

	toks := strings.Split(line, delim)
	row := make([]uint8, len(toks))
	for j, tok := range toks {
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil || uint8(v) > matrix.One {
			return nil, fmt.Errorf("token %d %q: %w", j, tok, ErrMalformed)
		}
		row[j] = uint8(v)
	}

	return row, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return m, nil
}
