package matrix_test

import (
	"testing"

	"github.com/katalvlaran/aco-tsp/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtFastSetFast(t *testing.T) {
	d, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	d.SetFast(1, 2, 4.5)
	require.Equal(t, 4.5, d.AtFast(1, 2))
}

func TestDense_FillOffDiagonal(t *testing.T) {
	d, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	d.FillOffDiagonal(2.0)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := d.AtFast(i, j)
			if i == j {
				require.Equal(t, 0.0, v)
			} else {
				require.Equal(t, 2.0, v)
			}
		}
	}
}
