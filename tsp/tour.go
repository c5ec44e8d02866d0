// Package tsp — Tour value type and its structural invariants.
//
// A Tour is an ordered permutation of [0..N) plus its cached total distance.
// Tours are value objects: construction never auto-validates, and every
// producer (Ant, local search) returns a fresh Tour rather than mutating a
// shared one in place.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/aco-tsp/core"
)

// Tour is a candidate Hamiltonian cycle: Sequence[0..N) visited in order,
// then back to Sequence[0]. Distance is a cache, not a derived field —
// callers that mutate Sequence must call RecomputeDistance.
type Tour struct {
	Sequence []int
	Distance float64
}

// NewTour wraps seq as a Tour with an as-yet-uncomputed Distance (0).
// It does not copy seq; callers that need an independent Tour should pass
// CopyTour(seq).
func NewTour(seq []int) Tour {
	return Tour{Sequence: seq}
}

// Validate reports whether t.Sequence has length n and visits each city
// in [0..n) exactly once. It does not check Distance.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Validate(n int) error {
	if len(t.Sequence) != n || n <= 0 {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	var v int
	for _, v = range t.Sequence {
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// RecomputeDistance recomputes Distance from scratch against g, including
// the closing edge Sequence[n-1]→Sequence[0].
//
// Complexity: O(n) time.
func (t *Tour) RecomputeDistance(g *core.Graph) {
	t.Distance = tourDistance(g, t.Sequence)
}

// Clone returns a Tour with an independent copy of Sequence.
func (t Tour) Clone() Tour {
	return Tour{Sequence: CopyTour(t.Sequence), Distance: t.Distance}
}

// CopyTour returns an independent copy of seq.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(seq []int) []int {
	if seq == nil {
		return nil
	}
	out := make([]int, len(seq))
	copy(out, seq)

	return out
}

// reverseSegment reverses the inclusive index range seq[i..k] in place.
// Indices are plain slice indices (0 ≤ i < k < len(seq)); unlike a closed
// tour representation there is no trailing duplicate to protect.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(seq []int, i, k int) {
	for i < k {
		seq[i], seq[k] = seq[k], seq[i]
		i++
		k--
	}
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2] d=40".
func (t Tour) DebugString() string {
	s := "["
	for idx, v := range t.Sequence {
		if idx > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", v)
	}
	s += fmt.Sprintf("] d=%g", t.Distance)

	return s
}
