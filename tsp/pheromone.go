// Package tsp — Pheromone matrix: the colony's shared memory of edge desirability.
//
// Pheromone wraps a *matrix.Dense the same way core.Graph wraps its distance
// matrix: dense row-major float64 storage, read-only during the parallel
// construction phase, mutated only by the serial controller (evaporate,
// deposit) between iterations.
package tsp

import "github.com/katalvlaran/aco-tsp/matrix"

// pheromoneFloor is the minimum value any off-diagonal entry is clamped to
// after evaporation, guarding against underflow across many iterations
// (spec §4.4). ρ∈(0,1) alone already prevents collapse on realistic
// horizons; this is a defensive backstop.
const pheromoneFloor = 1e-15

// Pheromone is an N×N symmetric matrix τ of pheromone levels. τ[i][i] is
// unused; τ[i][j] == τ[j][i] is maintained by construction (Initialize,
// Evaporate, Deposit all write both triangle entries together).
type Pheromone struct {
	m *matrix.Dense
	n int
}

// NewPheromone allocates an uninitialized N×N Pheromone matrix. Call
// Initialize before any Get/Deposit.
func NewPheromone(n int) (*Pheromone, error) {
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	return &Pheromone{m: d, n: n}, nil
}

// Initialize sets every off-diagonal entry to tau0. The diagonal is left at
// zero (unused per the invariant on Pheromone).
//
// Complexity: O(n²).
func (p *Pheromone) Initialize(tau0 float64) {
	p.m.FillOffDiagonal(tau0)
}

// Get returns τ[i][j].
func (p *Pheromone) Get(i, j int) float64 {
	return p.m.AtFast(i, j)
}

// Evaporate applies τ[i][j] ← (1−ρ)·τ[i][j] to every off-diagonal entry,
// clamping at pheromoneFloor, then mirrors the upper triangle onto the
// lower so symmetry is exact after floating-point rounding.
//
// Complexity: O(n²).
func (p *Pheromone) Evaporate(rho float64) {
	keep := 1 - rho

	var i, j int
	for i = 0; i < p.n; i++ {
		for j = i + 1; j < p.n; j++ {
			v := p.m.AtFast(i, j) * keep
			if v < pheromoneFloor {
				v = pheromoneFloor
			}
			p.m.SetFast(i, j, v)
			p.m.SetFast(j, i, v)
		}
	}
}

// Deposit adds delta to both τ[i][j] and τ[j][i], preserving symmetry.
//
// Complexity: O(1).
func (p *Pheromone) Deposit(i, j int, delta float64) {
	p.m.SetFast(i, j, p.m.AtFast(i, j)+delta)
	p.m.SetFast(j, i, p.m.AtFast(j, i)+delta)
}

// DepositTour adds Q/tourLength to every edge of seq (a closed cycle over
// [0..n)), the standard AS deposit for one ant's tour.
//
// Complexity: O(n).
func (p *Pheromone) DepositTour(seq []int, q, tourLength float64) {
	if tourLength <= 0 {
		return
	}
	delta := q / tourLength

	n := len(seq)
	var i int
	for i = 0; i < n; i++ {
		p.Deposit(seq[i], seq[(i+1)%n], delta)
	}
}
