// Package tsp implements tour construction, local search, and the ant colony
// controller for the symmetric Travelling Salesman Problem.
//
// Design goals:
//   - Mathematical rigor: precise, specialized sentinel errors; explicit tour invariants.
//   - Determinism: every randomized component is driven by an explicit seed.
//   - Zero surprises: sensible, documented defaults (DefaultOptions).
package tsp

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Do not wrap these with fmt.Errorf where the sentinel alone suffices;
// test with errors.Is.
var (
	// ErrDimensionMismatch indicates a tour/graph shape inconsistency
	// (wrong length, vertex out of range, a vertex repeated or missing).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrInvalidGraph indicates the supplied graph has fewer than two
	// cities or otherwise cannot back a tour.
	ErrInvalidGraph = errors.New("tsp: invalid graph")

	// ErrInvalidParameter indicates an Options field is outside its
	// documented domain (see DefaultOptions and Options field comments).
	ErrInvalidParameter = errors.New("tsp: invalid parameter")

	// ErrNotInitialized indicates Solve was called on a Colony before
	// Initialize.
	ErrNotInitialized = errors.New("tsp: colony not initialized")

	// ErrInternalError indicates an invariant the colony relies on was
	// violated at runtime (e.g. a nonfinite construction weight slipped
	// past the numerical guards). The in-flight best-so-far is discarded.
	ErrInternalError = errors.New("tsp: internal error")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Enumerations
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// LocalSearchMode selects which ants' tours receive a local-search pass
// within a single iteration.
type LocalSearchMode int

const (
	// LocalSearchNone never applies local search.
	LocalSearchNone LocalSearchMode = iota

	// LocalSearchBest applies local search only to the iteration's best tour.
	LocalSearchBest

	// LocalSearchAll applies local search to every ant's tour.
	LocalSearchAll
)

// String renders the mode the way it appears in configuration and logs.
func (m LocalSearchMode) String() string {
	switch m {
	case LocalSearchNone:
		return "none"
	case LocalSearchBest:
		return "best"
	case LocalSearchAll:
		return "all"
	default:
		return "unknown"
	}
}

// Variant selects the pheromone deposit discipline applied after evaporation.
type Variant int

const (
	// VariantAS is classic Ant System: every ant deposits Q/L on its tour.
	VariantAS Variant = iota

	// VariantElitist is AS plus an extra elitist-weighted deposit on the
	// global-best tour.
	VariantElitist

	// VariantRank is rank-based AS: only the top RankSize ants (by tour
	// length) deposit, weighted by rank, plus a global-best deposit.
	VariantRank
)

// String renders the variant the way it appears in configuration and logs.
func (v Variant) String() string {
	switch v {
	case VariantAS:
		return "AS"
	case VariantElitist:
		return "elitist"
	case VariantRank:
		return "rank"
	default:
		return "unknown"
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Options configures a Colony. Zero value is not meaningful; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// NumAnts is the colony size M. Must be ≥ 1.
	NumAnts int

	// Alpha weights the pheromone term τ^α during construction. Must be ≥ 0.
	Alpha float64

	// Beta weights the heuristic term (1/D)^β during construction. Must be ≥ 0.
	Beta float64

	// Rho is the evaporation rate applied every iteration. Must be in [0,1].
	Rho float64

	// Q is the pheromone deposit scale: an ant of length L deposits Q/L.
	// Must be > 0.
	Q float64

	// UseParallel dispatches per-ant construction across goroutines.
	UseParallel bool

	// NumThreads bounds concurrent ant-construction workers. Zero means
	// "use runtime.NumCPU()".
	NumThreads int

	// UseLocalSearch enables the local-search post-pass selected by
	// LocalSearchMode. When false, LocalSearchMode is ignored.
	UseLocalSearch bool

	// Use3Opt additionally runs 3-opt (alternated with 2-opt) wherever
	// local search runs. When false, only 2-opt runs.
	Use3Opt bool

	// LocalSearchMode selects which tours receive the local-search pass.
	LocalSearchMode LocalSearchMode

	// Variant selects the pheromone deposit discipline.
	Variant Variant

	// ElitistWeight is the extra weight e applied to the global-best
	// deposit under VariantElitist. Must be ≥ 0.
	ElitistWeight float64

	// RankSize is the number of top ants r that deposit under VariantRank.
	// Must be ≥ 1.
	RankSize int

	// ConvergenceThreshold K is the number of consecutive non-improving
	// iterations that ends a convergence-mode run (Solve(maxIters) with
	// maxIters < 0). Must be ≥ 1.
	ConvergenceThreshold int

	// CallbackInterval I: the progress callback fires every I iterations.
	// Must be ≥ 1.
	CallbackInterval int

	// Seed is the colony's base RNG seed. Combined with the iteration and
	// ant index to derive each ant's independent, reproducible stream.
	Seed int64
}

// Default configuration values (see spec §6).
const (
	DefaultNumAnts              = 20
	DefaultIterations           = 100
	DefaultAlpha                = 1.0
	DefaultBeta                 = 2.0
	DefaultRho                  = 0.5
	DefaultQ                    = 100.0
	DefaultUseParallel          = true
	DefaultNumThreads           = 0
	DefaultUseLocalSearch       = false
	DefaultUse3Opt              = true
	DefaultLocalSearchMode      = LocalSearchBest
	DefaultConvergenceThreshold = 200
	DefaultCallbackInterval     = 10
	DefaultElitistWeight        = 1.0
	DefaultRankSize             = 6
)

// DefaultOptions returns a fully populated Options struct with the
// configuration defaults from spec §6: 20 ants, α=1, β=2, ρ=0.5, Q=100,
// parallel construction, no local search, 3-opt enabled but dormant until
// UseLocalSearch is set, best-mode local search, classic AS variant.
func DefaultOptions() Options {
	return Options{
		NumAnts:              DefaultNumAnts,
		Alpha:                DefaultAlpha,
		Beta:                 DefaultBeta,
		Rho:                  DefaultRho,
		Q:                    DefaultQ,
		UseParallel:          DefaultUseParallel,
		NumThreads:           DefaultNumThreads,
		UseLocalSearch:       DefaultUseLocalSearch,
		Use3Opt:              DefaultUse3Opt,
		LocalSearchMode:      DefaultLocalSearchMode,
		Variant:              VariantAS,
		ElitistWeight:        DefaultElitistWeight,
		RankSize:             DefaultRankSize,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		CallbackInterval:     DefaultCallbackInterval,
		Seed:                 0,
	}
}

// ProgressEvent is the payload delivered to a progress callback.
type ProgressEvent struct {
	// Iteration is the 0-based iteration index just completed.
	Iteration int

	// BestDistance is the current global-best tour distance.
	BestDistance float64

	// BestSequence is a copy of the current global-best tour's city order.
	// Callers may retain it; the colony never mutates a delivered copy.
	BestSequence []int

	// History is a copy of the convergence history (per-iteration best
	// distances) up to and including Iteration.
	History []float64
}

// ProgressCallback is invoked synchronously on the controller goroutine,
// serialized in iteration order, no more often than every CallbackInterval
// iterations.
type ProgressCallback func(ProgressEvent)

// Result is returned by Colony.Solve.
type Result struct {
	// Tour is the global-best tour found.
	Tour Tour

	// Iterations is the number of iterations actually executed.
	Iterations int

	// Cancelled is true when Solve returned early because Cancel was
	// called; Tour is still the best tour found before the cutoff.
	Cancelled bool
}
