// Package tsp - validation utilities for Colony configuration.
//
// Graph validity (N≥2, finite coordinates) is enforced once by
// core.NewGraph; this file only validates the Options a Colony is
// configured with, per spec §7 InvalidParameter.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

// validateOptions checks Options fields against their documented domains.
// Returns ErrInvalidParameter on the first violation found.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch {
	case opts.NumAnts < 1:
		return ErrInvalidParameter
	case opts.Alpha < 0:
		return ErrInvalidParameter
	case opts.Beta < 0:
		return ErrInvalidParameter
	case opts.Rho < 0 || opts.Rho > 1:
		return ErrInvalidParameter
	case opts.Q <= 0:
		return ErrInvalidParameter
	case opts.RankSize < 1:
		return ErrInvalidParameter
	case opts.ElitistWeight < 0:
		return ErrInvalidParameter
	case opts.ConvergenceThreshold < 1:
		return ErrInvalidParameter
	case opts.CallbackInterval < 1:
		return ErrInvalidParameter
	case opts.NumThreads < 0:
		return ErrInvalidParameter
	}

	switch opts.LocalSearchMode {
	case LocalSearchNone, LocalSearchBest, LocalSearchAll:
	default:
		return ErrInvalidParameter
	}

	switch opts.Variant {
	case VariantAS, VariantElitist, VariantRank:
	default:
		return ErrInvalidParameter
	}

	return nil
}
