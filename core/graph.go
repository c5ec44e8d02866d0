package core

import (
	"math"

	"github.com/katalvlaran/aco-tsp/matrix"
)

// Graph is the immutable problem instance: N cities and their N×N symmetric
// distance matrix, computed once at construction time.
//
// Invariants (enforced by NewGraph):
//   - N = len(cities) >= 2.
//   - D[i][i] == 0 for all i.
//   - D[i][j] == D[j][i] for all i, j (Euclidean distance is symmetric by
//     construction; EUC_2D rounds each distance to the nearest integer).
//
// A Graph is read-only after construction: the colony shares it with every
// ant during parallel tour construction without any locking.
type Graph struct {
	cities []City
	dist   *matrix.Dense
}

// NewGraph builds a Graph from cities, computing the EUC_2D distance matrix
// once. Returns ErrTooFewCities if len(cities) < 2, or
// ErrNonFiniteCoordinate if any coordinate is NaN or ±Inf.
//
// Complexity: O(N²) time and space for the distance matrix.
func NewGraph(cities []City) (*Graph, error) {
	n := len(cities)
	if n < 2 {
		return nil, ErrTooFewCities
	}

	var i, j int
	for i = 0; i < n; i++ {
		if math.IsNaN(cities[i].X) || math.IsInf(cities[i].X, 0) ||
			math.IsNaN(cities[i].Y) || math.IsInf(cities[i].Y, 0) {
			return nil, ErrNonFiniteCoordinate
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		// n >= 2 was already checked above; NewDense can't fail here.
		return nil, err
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w := euclideanEUC2D(cities[i], cities[j])
			d.SetFast(i, j, w)
			d.SetFast(j, i, w)
		}
	}

	own := make([]City, n)
	copy(own, cities)
	for i = 0; i < n; i++ {
		own[i].Index = i
	}

	return &Graph{cities: own, dist: d}, nil
}

// euclideanEUC2D computes the TSPLIB EUC_2D distance between two cities:
// the Euclidean distance rounded to the nearest integer.
func euclideanEUC2D(a, b City) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Round(math.Sqrt(dx*dx + dy*dy))
}

// N returns the number of cities in the graph.
// Complexity: O(1).
func (g *Graph) N() int {
	return len(g.cities)
}

// City returns the city at the given index, or ErrCityIndexOutOfRange.
// Complexity: O(1).
func (g *Graph) City(i int) (City, error) {
	if i < 0 || i >= len(g.cities) {
		return City{}, ErrCityIndexOutOfRange
	}

	return g.cities[i], nil
}

// Cities returns a copy of the graph's city list, ordered by index.
// Complexity: O(N).
func (g *Graph) Cities() []City {
	out := make([]City, len(g.cities))
	copy(out, g.cities)

	return out
}

// Distance returns D[i][j], the precomputed EUC_2D distance between cities
// i and j. Indices are not bounds-checked: out-of-range indices may panic
// or read an unrelated entry, and are the caller's responsibility to avoid
// (callers in this module always index within [0, N), validated upstream
// by Tour/ant construction).
// Complexity: O(1).
func (g *Graph) Distance(i, j int) float64 {
	return g.dist.AtFast(i, j)
}

// NearestNeighborTourLength computes the length of a greedy nearest-neighbor
// tour starting at city 0: repeatedly hop to the closest unvisited city,
// then close the cycle back to the start.
//
// This is used only as a scale proxy for initial pheromone (τ₀ = M / L_nn);
// it is not returned as a candidate solution.
//
// Complexity: O(N²) time, O(N) space.
func (g *Graph) NearestNeighborTourLength() float64 {
	n := len(g.cities)
	visited := make([]bool, n)
	visited[0] = true
	current := 0
	total := 0.0

	var step int
	for step = 1; step < n; step++ {
		best := -1
		bestDist := math.Inf(1)

		var j int
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d := g.dist.AtFast(current, j)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		total += bestDist
		visited[best] = true
		current = best
	}

	// Close the cycle.
	total += g.dist.AtFast(current, 0)

	return total
}
