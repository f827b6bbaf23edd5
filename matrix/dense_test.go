// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kngen/matrix"
)

func TestNewDense_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"empty", 0, 0, nil},
		{"zero cols", 3, 0, nil},
		{"rect", 2, 3, nil},
		{"negative rows", -1, 2, matrix.ErrBadShape},
		{"negative cols", 2, -1, matrix.ErrBadShape},
		{"over cap", matrix.MaxCells/2 + 1, 2, matrix.ErrBadShape},
		{"product overflows int", math.MaxInt, math.MaxInt, matrix.ErrBadShape},
		{"huge rows, zero cols", math.MaxInt, 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Zero(t, m.Ones())
		})
	}
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, matrix.One))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.One, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, matrix.One), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, 2), matrix.ErrNonBinary)

	var nilM *matrix.Dense
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Zero(t, nilM.Rows())
	require.Zero(t, nilM.Cols())
}

func TestDense_RowCloneEqual(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 1, matrix.One))

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 1}, row)
	row[0] = 1 // copy, must not leak into m
	v, _ := m.At(0, 0)
	require.Equal(t, matrix.Zero, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(1, 0, matrix.One))
	require.False(t, m.Equal(c))

	other, _ := matrix.NewDense(2, 3)
	require.False(t, m.Equal(other))

	var a, b *matrix.Dense
	require.True(t, a.Equal(b))
	require.False(t, m.Equal(nil))
}

func TestDense_String(t *testing.T) {
	empty, _ := matrix.NewDense(0, 0)
	require.Equal(t, "[]", empty.String())

	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 1, matrix.One))
	require.NoError(t, m.Set(1, 0, matrix.One))
	require.Equal(t, "[[0 1]\n [1 0]]", m.String())
}
