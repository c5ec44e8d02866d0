package tsp_test

import (
	"testing"

	"github.com/katalvlaran/aco-tsp/core"
	"github.com/katalvlaran/aco-tsp/tsp"
	"github.com/stretchr/testify/require"
)

func hexagonGraph(t *testing.T) *core.Graph {
	t.Helper()
	// Six points roughly on a circle; gives 3-opt room to find improving
	// reconnections that plain 2-opt on an adversarial ordering may miss.
	cities := []core.City{
		{Index: 0, X: 0, Y: 0},
		{Index: 1, X: 4, Y: 0},
		{Index: 2, X: 6, Y: 3},
		{Index: 3, X: 4, Y: 6},
		{Index: 4, X: 0, Y: 6},
		{Index: 5, X: -2, Y: 3},
	}
	g, err := core.NewGraph(cities)
	require.NoError(t, err)

	return g
}

func TestThreeOpt_NeverWorsensATour(t *testing.T) {
	g := hexagonGraph(t)
	adversarial := tsp.NewTour([]int{0, 3, 1, 4, 2, 5})
	adversarial.RecomputeDistance(g)

	improved, err := tsp.ThreeOpt(g, adversarial)
	require.NoError(t, err)
	require.LessOrEqual(t, improved.Distance, adversarial.Distance)
	require.NoError(t, improved.Validate(g.N()))
}

func TestThreeOpt_TooFewCitiesPassesThrough(t *testing.T) {
	cities := []core.City{
		{Index: 0, X: 0, Y: 0},
		{Index: 1, X: 3, Y: 0},
		{Index: 2, X: 0, Y: 4},
	}
	g, err := core.NewGraph(cities)
	require.NoError(t, err)

	tour := tsp.NewTour([]int{0, 1, 2})
	tour.RecomputeDistance(g)

	out, err := tsp.ThreeOpt(g, tour)
	require.NoError(t, err)
	require.Equal(t, tour.Sequence, out.Sequence)
	require.Equal(t, tour.Distance, out.Distance)
}

func TestThreeOpt_RejectsInvalidTour(t *testing.T) {
	g := hexagonGraph(t)
	bad := tsp.NewTour([]int{0, 1, 1, 3, 4, 5})
	_, err := tsp.ThreeOpt(g, bad)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
