// Package matrix provides dense, row-major float64 matrix storage shared by
// the colony's distance and pheromone tables.
//
// Matrix is intentionally tiny: a single Dense type, so that distance
// lookups and pheromone reads in hot loops hit a flat slice directly
// (AtFast/SetFast) rather than a [][]float64 of independently-allocated
// rows or a method call through an interface.
package matrix
