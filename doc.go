// Package acotsp is an Ant Colony Optimization solver for the symmetric
// Traveling Salesman Problem.
//
// A colony of simulated ants builds candidate tours biased by a shared
// pheromone matrix and a nearest-city heuristic; short tours reinforce the
// edges they used, and the colony converges toward short Hamiltonian
// cycles over many iterations.
//
// The module is organized into focused subpackages:
//
//	core/   — City, Graph and the EUC_2D distance matrix
//	loader/ — TSPLIB (EUC_2D) file parsing
//	matrix/ — dense float64 matrix storage shared by distance and pheromone
//	tsp/    — Tour, Pheromone, Ant construction, 2-opt/3-opt, Colony controller
//
//	go get github.com/katalvlaran/aco-tsp
package acotsp
