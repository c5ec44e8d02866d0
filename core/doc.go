// Package core defines the immutable problem instance for the ant colony TSP
// solver: a set of Cities and the symmetric distance matrix derived from
// their coordinates.
//
// A Graph is built once (by loader.Load or NewGraph) and then shared
// read-only with every ant during tour construction and with the local
// search passes. Nothing in this package mutates a Graph after
// construction, so no internal locking is required.
package core
