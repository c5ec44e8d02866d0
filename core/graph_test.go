package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/aco-tsp/core"
	"github.com/stretchr/testify/require"
)

func square() []core.City {
	return []core.City{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}
}

func TestNewGraph_TooFewCities(t *testing.T) {
	_, err := core.NewGraph([]core.City{{X: 0, Y: 0}})
	require.ErrorIs(t, err, core.ErrTooFewCities)
}

func TestNewGraph_NonFiniteCoordinate(t *testing.T) {
	cities := []core.City{{X: math.NaN(), Y: 0}, {X: 1, Y: 1}}
	_, err := core.NewGraph(cities)
	require.ErrorIs(t, err, core.ErrNonFiniteCoordinate)
}

func TestGraph_DistanceIsSymmetricAndZeroDiagonal(t *testing.T) {
	g, err := core.NewGraph(square())
	require.NoError(t, err)

	for i := 0; i < g.N(); i++ {
		require.Equal(t, 0.0, g.Distance(i, i))
		for j := 0; j < g.N(); j++ {
			require.Equal(t, g.Distance(i, j), g.Distance(j, i))
		}
	}
}

func TestGraph_SquareEdgeLengths(t *testing.T) {
	g, err := core.NewGraph(square())
	require.NoError(t, err)

	require.Equal(t, 10.0, g.Distance(0, 1))
	require.Equal(t, 10.0, g.Distance(1, 2))
	require.InDelta(t, math.Sqrt(200), g.Distance(0, 2), 1.0)
}

func TestGraph_NearestNeighborTourLength_Square(t *testing.T) {
	g, err := core.NewGraph(square())
	require.NoError(t, err)

	// The square's perimeter (40) is the optimal and also what a
	// nearest-neighbor walk from any corner finds, since every
	// unvisited-nearest choice follows an edge of the square.
	require.InDelta(t, 40.0, g.NearestNeighborTourLength(), 1e-9)
}

func TestGraph_CityOutOfRange(t *testing.T) {
	g, err := core.NewGraph(square())
	require.NoError(t, err)

	_, err = g.City(-1)
	require.ErrorIs(t, err, core.ErrCityIndexOutOfRange)
	_, err = g.City(g.N())
	require.ErrorIs(t, err, core.ErrCityIndexOutOfRange)
}
