// Package tsp — cost utilities shared by Tour construction and local search.
//
// Design:
//   - Tour distance is always computed over a *core.Graph's distance matrix.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/aco-tsp/core"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// tourDistance sums the closed-cycle distance of seq over g, including the
// closing edge seq[n-1]→seq[0]. The caller is responsible for seq being a
// valid permutation; this function only needs in-range indices.
//
// Complexity: O(n) time.
func tourDistance(g *core.Graph, seq []int) float64 {
	n := len(seq)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += g.Distance(seq[i], seq[(i+1)%n])
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision. This keeps costs
// stable across platforms without affecting algorithmic correctness.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
