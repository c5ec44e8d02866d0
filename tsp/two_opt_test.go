package tsp_test

import (
	"testing"

	"github.com/katalvlaran/aco-tsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	g := squareGraph(t)
	crossed := tsp.NewTour([]int{0, 2, 1, 3})
	crossed.RecomputeDistance(g)
	require.Greater(t, crossed.Distance, 40.0)

	improved, err := tsp.TwoOpt(g, crossed)
	require.NoError(t, err)
	require.Equal(t, 40.0, improved.Distance)
	require.NoError(t, improved.Validate(g.N()))
}

func TestTwoOpt_NeverWorsensAlreadyOptimalTour(t *testing.T) {
	g := squareGraph(t)
	optimal := tsp.NewTour([]int{0, 1, 2, 3})
	optimal.RecomputeDistance(g)

	improved, err := tsp.TwoOpt(g, optimal)
	require.NoError(t, err)
	require.LessOrEqual(t, improved.Distance, optimal.Distance)
}

func TestTwoOpt_RejectsInvalidTour(t *testing.T) {
	g := squareGraph(t)
	bad := tsp.NewTour([]int{0, 1, 1})
	_, err := tsp.TwoOpt(g, bad)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
