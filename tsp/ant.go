// Package tsp — Ant: single-agent stochastic tour construction.
//
// Each ant builds one Tour from a shared, read-only Graph and Pheromone
// matrix plus its own exclusively-owned RNG stream. Ants never mutate
// colony state; they are pure producers of a Tour value (spec §4.5, §5).
package tsp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/aco-tsp/core"
)

// Ant constructs tours biased by pheromone and a nearest-city heuristic.
// The zero value is usable; Construct is the only method and is stateless
// across calls.
type Ant struct{}

// Construct builds one Tour over g, biased by τ^α·(1/D)^β weights, using
// rng as its exclusive random source.
//
// Algorithm (spec §4.5):
//  1. Pick a start city uniformly at random.
//  2. While unvisited cities remain, compute weight
//     w_j = τ[c][j]^α · (1/D[c][j])^β for every unvisited j.
//     If Σw_j is zero or nonfinite, fall back to a uniform pick.
//     Otherwise sample j by inverse-CDF over a uniform(0,1) draw.
//  3. After N cities, the Tour's Distance includes the closing edge.
//
// Construction cannot fail on a valid Graph: the uniform fallback
// guarantees a complete permutation even under pathological weights.
//
// Complexity: O(n²) time (n steps, O(n) work each), O(n) space.
func (Ant) Construct(g *core.Graph, ph *Pheromone, alpha, beta float64, rng *rand.Rand) Tour {
	n := g.N()
	visited := make([]bool, n)
	seq := make([]int, 0, n)

	start := rng.Intn(n)
	seq = append(seq, start)
	visited[start] = true
	c := start

	weights := make([]float64, 0, n)
	candidates := make([]int, 0, n)

	for len(seq) < n {
		weights = weights[:0]
		candidates = candidates[:0]

		var sum float64
		var j int
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d := g.Distance(c, j)
			if d <= 0 {
				// Distinct cities at zero distance: treat the heuristic
				// term as 1/(D+ε) rather than dividing by zero.
				d = 1e-12
			}
			w := math.Pow(ph.Get(c, j), alpha) * math.Pow(1/d, beta)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				w = 0
			}
			weights = append(weights, w)
			candidates = append(candidates, j)
			sum += w
		}

		var next int
		if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
			// Uniform fallback over unvisited candidates.
			next = candidates[rng.Intn(len(candidates))]
		} else {
			next = sampleInverseCDF(candidates, weights, sum, rng.Float64())
		}

		seq = append(seq, next)
		visited[next] = true
		c = next
	}

	t := Tour{Sequence: seq}
	t.RecomputeDistance(g)

	return t
}

// sampleInverseCDF picks an index from candidates proportional to weights,
// using draw ∈ [0,1) as the uniform sample and sum as Σweights. The last
// candidate is returned as a fallback against floating-point rounding that
// leaves the cumulative sum just short of draw*sum.
//
// Complexity: O(len(candidates)).
func sampleInverseCDF(candidates []int, weights []float64, sum, draw float64) int {
	target := draw * sum

	var cum float64
	var i int
	for i = 0; i < len(weights); i++ {
		cum += weights[i]
		if cum >= target {
			return candidates[i]
		}
	}

	return candidates[len(candidates)-1]
}
