package tsp_test

import (
	"testing"

	"github.com/katalvlaran/aco-tsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestRecommend_ClampsAntCount(t *testing.T) {
	require.Equal(t, 10, tsp.Recommend(3).NumAnts)
	require.Equal(t, 100, tsp.Recommend(5000).NumAnts)
	require.Equal(t, 52, tsp.Recommend(52).NumAnts)
}

func TestRecommend_StepsDownLocalSearchByProblemSize(t *testing.T) {
	small := tsp.Recommend(51)
	require.True(t, small.Use3Opt)
	require.Equal(t, tsp.LocalSearchAll, small.LocalSearchMode)

	medium := tsp.Recommend(150)
	require.True(t, medium.Use3Opt)
	require.Equal(t, tsp.LocalSearchBest, medium.LocalSearchMode)

	large := tsp.Recommend(500)
	require.False(t, large.Use3Opt)
	require.Equal(t, tsp.LocalSearchBest, large.LocalSearchMode)
}

func TestGap_ComputesRelativeSuboptimality(t *testing.T) {
	require.InDelta(t, 0.0, tsp.Gap(7542, 7542), 1e-12)
	require.InDelta(t, 0.021, tsp.Gap(7700, 7542), 1e-3)
}

func TestBenchmarks_ContainsNamedScenarios(t *testing.T) {
	b := tsp.Benchmarks()
	require.Equal(t, tsp.BenchmarkInfo{Cities: 52, Optimal: 7542}, b["berlin52.tsp"])
	require.Equal(t, tsp.BenchmarkInfo{Cities: 51, Optimal: 426}, b["eil51.tsp"])
	require.Equal(t, tsp.BenchmarkInfo{Cities: 70, Optimal: 675}, b["st70.tsp"])
}
