// SPDX-License-Identifier: MIT

package textio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kngen/builder"
	"github.com/katalvlaran/kngen/matrix"
	"github.com/katalvlaran/kngen/textio"
)

func TestWrite_CompleteGraphs(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "0\n"},
		{2, "0 1\n1 0\n"},
		{3, "0 1 1\n1 0 1\n1 1 0\n"},
	}
	for _, tc := range tests {
		m, err := builder.Complete(tc.n)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, textio.Write(&buf, m))
		require.Equal(t, tc.want, buf.String(), "n=%d", tc.n)
	}
}

func TestWrite_ShapeGuarantee(t *testing.T) {
	m, err := matrix.NewDense(3, 5)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 4, matrix.One))

	var buf bytes.Buffer
	require.NoError(t, textio.Write(&buf, m))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Len(t, strings.Split(l, " "), 5)
		require.False(t, strings.HasSuffix(l, " "), "no trailing delimiter")
	}
	require.Equal(t, "0 0 0 0 1", lines[2])
}

func TestWrite_Delimiter(t *testing.T) {
	m, _ := builder.Complete(2)
	var buf bytes.Buffer
	require.NoError(t, textio.Write(&buf, m, textio.WithDelimiter("\t")))
	require.Equal(t, "0\t1\n1\t0\n", buf.String())

	require.Panics(t, func() { textio.WithDelimiter("") })
	require.Panics(t, func() { textio.WithDelimiter("\n") })
}

func TestWrite_NilGrid(t *testing.T) {
	require.ErrorIs(t, textio.Write(&bytes.Buffer{}, nil), textio.ErrNilGrid)
}

// failWriter fails every write.
type failWriter struct{}

var errSink = errors.New("sink broken")

func (failWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWrite_SinkFailure(t *testing.T) {
	m, _ := builder.Complete(4)
	err := textio.Write(failWriter{}, m)
	require.ErrorIs(t, err, textio.ErrIO)
	require.ErrorIs(t, err, errSink)
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 33} {
		m, err := builder.Complete(n)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, textio.Write(&buf, m))
		back, err := textio.Read(&buf)
		require.NoError(t, err)
		require.True(t, m.Equal(back), "n=%d", n)
	}
}

func TestRead_Lenient(t *testing.T) {
	// trailing delimiter per row and CRLF endings
	m, err := textio.Read(strings.NewReader("0 1 \r\n1 0 \r\n"))
	require.NoError(t, err)
	want, _ := builder.Complete(2)
	require.True(t, want.Equal(m))

	// missing final newline
	m, err = textio.Read(strings.NewReader("0 1\n1 0"))
	require.NoError(t, err)
	require.True(t, want.Equal(m))
}

func TestRead_Malformed(t *testing.T) {
	for _, in := range []string{
		"0 1\n1\n",
		"0 2\n2 0\n",
		"0 x\n",
		"0  1\n",
		"0 -1\n",
	} {
		_, err := textio.Read(strings.NewReader(in))
		require.ErrorIs(t, err, textio.ErrMalformed, "input %q", in)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, textio.FileName(3))
	require.Equal(t, "grafo_3.txt", filepath.Base(path))

	// pre-existing content is truncated
	require.NoError(t, os.WriteFile(path, []byte("stale stale stale stale stale\n"), 0o644))

	m, _ := builder.Complete(3)
	require.NoError(t, textio.WriteFile(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0 1 1\n1 0 1\n1 1 0\n", string(data))

	back, err := textio.ReadFile(path)
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

func TestWriteFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), textio.FileName(0))
	m, _ := builder.Complete(0)
	require.NoError(t, textio.WriteFile(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestWriteFile_BadPath(t *testing.T) {
	m, _ := builder.Complete(2)
	path := filepath.Join(t.TempDir(), "missing", "grafo_2.txt")

	err := textio.WriteFile(path, m)
	require.ErrorIs(t, err, textio.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = textio.ReadFile(path)
	require.ErrorIs(t, err, textio.ErrIO)
}
