// Package tsp provides Tour construction and improvement for the symmetric
// Travelling Salesman Problem, and the Colony controller that drives an ant
// colony toward short tours over many iterations.
//
// # What & Why
//
// Given a core.Graph, an Ant builds one Tour per call by a pheromone- and
// heuristic-biased random walk (see ant.go). Colony orchestrates M ants per
// iteration, tracks the global-best Tour, applies 2-opt/3-opt local search,
// and updates a shared Pheromone matrix by one of three deposit disciplines
// (classic AS, elitist, or rank-based).
//
// # Algorithms & Complexity
//
//	TwoOpt   — first-improvement 2-opt, O(passes·n²)
//	ThreeOpt — first-improvement over triples, best of 7 reconnections per
//	           triple, O(passes·n³)
//	Ant.Construct — O(n²) per tour (n candidates considered at each of n steps)
//	Colony.Solve  — per iteration: O(M·n²) construction (or O(M·n³) with 3-opt
//	                in "all" mode), plus O(n²) evaporation/deposit
//
// # Determinism
//
//   - Each ant's RNG stream is derived from Options.Seed, the iteration
//     index, and the ant index via a commutative SplitMix64-style mix, so
//     parallel and serial runs agree bit-for-bit (see rng.go).
//   - Costs are rounded to 1e-9 (round1e9) to avoid cross-platform FP drift.
//
// # Errors (strict sentinels)
//
//	ErrDimensionMismatch, ErrInvalidGraph, ErrInvalidParameter,
//	ErrNotInitialized, ErrInternalError.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
package tsp
