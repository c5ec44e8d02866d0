package tsp_test

import (
	"testing"

	"github.com/katalvlaran/aco-tsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestPheromone_InitializeSetsOffDiagonal(t *testing.T) {
	p, err := tsp.NewPheromone(4)
	require.NoError(t, err)

	p.Initialize(2.5)
	require.Equal(t, 2.5, p.Get(0, 1))
	require.Equal(t, 2.5, p.Get(3, 2))
}

func TestPheromone_EvaporateDecreasesAndStaysSymmetric(t *testing.T) {
	p, err := tsp.NewPheromone(3)
	require.NoError(t, err)
	p.Initialize(1.0)

	p.Evaporate(0.5)

	require.InDelta(t, 0.5, p.Get(0, 1), 1e-12)
	require.Equal(t, p.Get(0, 1), p.Get(1, 0))
}

func TestPheromone_EvaporateFloorsAtEpsilon(t *testing.T) {
	p, err := tsp.NewPheromone(2)
	require.NoError(t, err)
	p.Initialize(1e-20)

	for i := 0; i < 5; i++ {
		p.Evaporate(0.9)
	}

	require.GreaterOrEqual(t, p.Get(0, 1), 1e-15)
}

func TestPheromone_DepositAddsToBothTriangleEntries(t *testing.T) {
	p, err := tsp.NewPheromone(3)
	require.NoError(t, err)
	p.Initialize(1.0)

	p.Deposit(0, 2, 0.5)
	require.InDelta(t, 1.5, p.Get(0, 2), 1e-12)
	require.InDelta(t, 1.5, p.Get(2, 0), 1e-12)
}

func TestPheromone_DepositTourDistributesQOverLength(t *testing.T) {
	p, err := tsp.NewPheromone(3)
	require.NoError(t, err)
	p.Initialize(0.0)

	p.DepositTour([]int{0, 1, 2}, 9.0, 3.0)

	require.InDelta(t, 3.0, p.Get(0, 1), 1e-12)
	require.InDelta(t, 3.0, p.Get(1, 2), 1e-12)
	require.InDelta(t, 3.0, p.Get(2, 0), 1e-12)
}
