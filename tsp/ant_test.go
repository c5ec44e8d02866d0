package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aco-tsp/core"
	"github.com/katalvlaran/aco-tsp/tsp"
	"github.com/stretchr/testify/require"
)

func squareGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.City{
		{Index: 0, X: 0, Y: 0},
		{Index: 1, X: 0, Y: 10},
		{Index: 2, X: 10, Y: 10},
		{Index: 3, X: 10, Y: 0},
	})
	require.NoError(t, err)

	return g
}

func TestAnt_ConstructProducesValidPermutation(t *testing.T) {
	g := squareGraph(t)
	ph, err := tsp.NewPheromone(g.N())
	require.NoError(t, err)
	ph.Initialize(1.0)

	ant := tsp.Ant{}
	rng := rand.New(rand.NewSource(42))
	tour := ant.Construct(g, ph, 1.0, 2.0, rng)

	require.NoError(t, tour.Validate(g.N()))
	require.Equal(t, 40.0, tour.Distance)
}

func TestAnt_ConstructUniformFallbackOnZeroPheromone(t *testing.T) {
	// With every pheromone entry at zero and alpha=1, each weight
	// τ^α·(1/D)^β is zero, so every step takes the uniform fallback; the
	// tour must still be a valid permutation.
	g := squareGraph(t)
	ph, err := tsp.NewPheromone(g.N())
	require.NoError(t, err)
	ph.Initialize(0.0)

	ant := tsp.Ant{}
	rng := rand.New(rand.NewSource(7))
	tour := ant.Construct(g, ph, 1.0, 2.0, rng)

	require.NoError(t, tour.Validate(g.N()))
}

func TestAnt_ConstructDeterministicGivenSameRNGSeed(t *testing.T) {
	g := squareGraph(t)
	ph, err := tsp.NewPheromone(g.N())
	require.NoError(t, err)
	ph.Initialize(1.0)

	ant := tsp.Ant{}
	t1 := ant.Construct(g, ph, 1.0, 2.0, rand.New(rand.NewSource(99)))
	t2 := ant.Construct(g, ph, 1.0, 2.0, rand.New(rand.NewSource(99)))

	require.Equal(t, t1.Sequence, t2.Sequence)
	require.Equal(t, t1.Distance, t2.Distance)
}
