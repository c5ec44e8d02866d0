package tsp_test

import (
	"testing"

	"github.com/katalvlaran/aco-tsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestTour_ValidateAcceptsPermutation(t *testing.T) {
	tour := tsp.NewTour([]int{0, 2, 1, 3})
	require.NoError(t, tour.Validate(4))
}

func TestTour_ValidateRejectsWrongLength(t *testing.T) {
	tour := tsp.NewTour([]int{0, 1, 2})
	require.ErrorIs(t, tour.Validate(4), tsp.ErrDimensionMismatch)
}

func TestTour_ValidateRejectsDuplicate(t *testing.T) {
	tour := tsp.NewTour([]int{0, 1, 1, 3})
	require.ErrorIs(t, tour.Validate(4), tsp.ErrDimensionMismatch)
}

func TestTour_ValidateRejectsOutOfRange(t *testing.T) {
	tour := tsp.NewTour([]int{0, 1, 2, 4})
	require.ErrorIs(t, tour.Validate(4), tsp.ErrDimensionMismatch)
}

func TestTour_RecomputeDistanceOnSquare(t *testing.T) {
	g := squareGraph(t)
	tour := tsp.NewTour([]int{0, 1, 2, 3})
	tour.RecomputeDistance(g)
	require.Equal(t, 40.0, tour.Distance)
}

func TestTour_CloneIsIndependent(t *testing.T) {
	tour := tsp.NewTour([]int{0, 1, 2, 3})
	tour.Distance = 40.0
	clone := tour.Clone()
	clone.Sequence[0] = 99

	require.Equal(t, 0, tour.Sequence[0])
	require.Equal(t, 40.0, clone.Distance)
}

func TestCopyTour_NilIsNil(t *testing.T) {
	require.Nil(t, tsp.CopyTour(nil))
}
