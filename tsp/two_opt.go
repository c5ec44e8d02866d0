// Package tsp - 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a Tour: for all
// pairs (i,k) with 1 ≤ i < k ≤ N−1, consider reversing segment s[i..k].
// Δ = D[a][c] + D[b][d] − D[a][b] − D[c][d], with a=s[i−1], b=s[i], c=s[k],
// d=s[(k+1) mod N]. A strictly improving move is applied immediately and
// the scan restarts from the beginning ("first-improvement").
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Strict sentinel errors only. No fmt.Errorf in hot paths.
//   - Cost stabilized to 1e-9 via round1e9.
//
// Complexity: O(n²) candidate checks per pass; first-improvement restarts
// after each accepted move, so the overall cost is O(passes·n²).
package tsp

import "github.com/katalvlaran/aco-tsp/core"

// twoOptEps is the minimal strictly-better improvement accepted by 2-opt
// and 3-opt; guards against churn from floating-point noise.
const twoOptEps = 1e-9

// TwoOpt returns an improved Tour (never longer than the input) found by
// repeated first-improvement 2-opt passes until a local optimum.
func TwoOpt(g *core.Graph, t Tour) (Tour, error) {
	n := g.N()
	if err := t.Validate(n); err != nil {
		return Tour{}, err
	}

	cur := CopyTour(t.Sequence)
	cost := tourDistance(g, cur)

	for {
		improved := false

		var (
			i, k       int
			a, b, c, d int
			delta      float64
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[(k+1)%n]

				delta = (g.Distance(a, c) + g.Distance(b, d)) - (g.Distance(a, b) + g.Distance(c, d))
				if delta < -twoOptEps {
					reverseSegment(cur, i, k)
					cost += delta
					improved = true
					break
				}
			}
		}

		if !improved {
			break
		}
	}

	out := Tour{Sequence: cur, Distance: round1e9(cost)}
	if err := out.Validate(n); err != nil {
		return Tour{}, err
	}

	return out, nil
}
