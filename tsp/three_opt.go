// Package tsp — 3-opt local search.
//
// ThreeOpt performs local search over 3-edge exchanges on a Tour. For all
// triples (i,j,k) with 1 ≤ i < j < k ≤ N−1, it considers the seven
// non-identity reconnections of the three broken edges (a–b, c–d, e–f)
// where a=s[i−1], b=s[i], c=s[j−1], d=s[j], e=s[k], f=s[(k+1) mod N]. For
// each triple the best strictly-improving reconnection (if any) is applied
// immediately and the scan restarts ("first-improvement over triples, best
// of the seven reconnections at each triple").
//
// Contracts & complexity: O(n³) candidate triples per pass, O(1) per
// reconnection delta (no full retour), O(n) to apply an accepted move.
package tsp

import "github.com/katalvlaran/aco-tsp/core"

// segKind enumerates the segment variants evaluated at each triple.
type segKind uint8

const (
	segS1  segKind = iota // S1 = s[i..j-1] forward
	segS1R                // S1 reversed
	segS2                 // S2 = s[j..k] forward
	segS2R                // S2 reversed
)

// segFirstLast maps a segment kind to its first/last vertex given the
// boundary markers b=s[i], c=s[j-1], d=s[j], e=s[k].
func segFirstLast(kind segKind, b, c, d, e int) (first, last int) {
	switch kind {
	case segS1:
		return b, c
	case segS1R:
		return c, b
	case segS2:
		return d, e
	default: // segS2R
		return e, d
	}
}

// tryXSym and tryYSym enumerate the 7 non-identity (X,Y) reconnections of
// {S1,S1R,S2,S2R} — the standard symmetric 3-opt neighborhood.
var tryXSym = [...]segKind{segS1R, segS1, segS2R, segS1R, segS2, segS2R, segS2}
var tryYSym = [...]segKind{segS2, segS2R, segS1R, segS2R, segS1R, segS1, segS1}

// ThreeOpt returns an improved Tour found by repeated first-improvement
// 3-opt passes (best of the 7 reconnections per triple) until a local
// optimum, or an error if t fails to validate against g.
func ThreeOpt(g *core.Graph, t Tour) (Tour, error) {
	n := g.N()
	if err := t.Validate(n); err != nil {
		return Tour{}, err
	}
	if n < 4 {
		// Too few cities for a distinct triple 1≤i<j<k≤N-1; 2-opt alone
		// already covers these small instances.
		return t.Clone(), nil
	}

	cur := CopyTour(t.Sequence)
	cost := tourDistance(g, cur)

	for {
		improved := false

		var (
			i, j, k                      int
			a, b, c, d, e, f             int
			xFirst, xLast, yFirst, yLast int
			removed, delta               float64
			bestDelta                    float64
			bestI, bestJ, bestK          int
			bestX, bestY                 segKind
			found                        bool
		)

		for i = 1; i <= n-3 && !improved; i++ {
			for j = i + 1; j <= n-2 && !improved; j++ {
				for k = j + 1; k <= n-1 && !improved; k++ {
					a, b = cur[i-1], cur[i]
					c, d = cur[j-1], cur[j]
					e, f = cur[k], cur[(k+1)%n]
					removed = g.Distance(a, b) + g.Distance(c, d) + g.Distance(e, f)

					found = false
					bestDelta = 0
					for m := 0; m < 7; m++ {
						xFirst, xLast = segFirstLast(tryXSym[m], b, c, d, e)
						yFirst, yLast = segFirstLast(tryYSym[m], b, c, d, e)

						delta = (g.Distance(a, xFirst) + g.Distance(xLast, yFirst) + g.Distance(yLast, f)) - removed
						if delta < -twoOptEps && delta < bestDelta {
							bestDelta = delta
							bestI, bestJ, bestK = i, j, k
							bestX, bestY = tryXSym[m], tryYSym[m]
							found = true
						}
					}

					if found {
						cur = apply3Opt(cur, bestI, bestJ, bestK, bestX, bestY)
						cost += bestDelta
						improved = true
					}
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

// apply3Opt assembles out = P + X + Y + S3, where P=s[:i], S1=s[i:j],
// S2=s[j:k+1], S3=s[k+1:n], and X,Y select {S1,S1R,S2,S2R} per the chosen
// reconnection.
//
// Complexity: O(n) time, O(n) space.
func apply3Opt(seq []int, i, j, k int, X, Y segKind) []int {
	n := len(seq)
	P, S1, S2, S3 := seq[:i], seq[i:j], seq[j:k+1], seq[k+1:n]

	out := make([]int, 0, n)
	out = append(out, P...)

	emit := func(seg []int, reverse bool) {
		if !reverse {
			out = append(out, seg...)
			return
		}
		for t := len(seg) - 1; t >= 0; t-- {
			out = append(out, seg[t])
		}
	}

	switch X {
	case segS1:
		emit(S1, false)
	case segS1R:
		emit(S1, true)
	case segS2:
		emit(S2, false)
	default:
		emit(S2, true)
	}
	switch Y {
	case segS1:
		emit(S1, false)
	case segS1R:
		emit(S1, true)
	case segS2:
		emit(S2, false)
	default:
		emit(S2, true)
	}

	out = append(out, S3...)

	return out
}
