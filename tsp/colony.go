// Package tsp — Colony: the ant colony iteration controller.
//
// Colony owns the Graph, the Pheromone matrix, and per-run state (global
// best, convergence history, iteration counter). Each call to Solve drives
// the iterate-until-termination loop described in spec §4.7: parallel ant
// construction, iteration-best selection, optional local search, pheromone
// evaporation and deposit, convergence tracking, and progress callbacks.
//
// No locks are used: ants only read the Graph and Pheromone during the
// parallel construction phase; every write (evaporation, deposit, history,
// global-best) happens in the serial section between construction phases.
package tsp

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"math/rand"

	"github.com/katalvlaran/aco-tsp/core"
)

// maxLocalSearchOuterRounds bounds the 2-opt/3-opt alternation when Use3Opt
// is enabled (spec §4.6: "cap total passes at a small constant, e.g. 3
// outer rounds").
const maxLocalSearchOuterRounds = 3

// Colony drives the ant-colony iteration loop over a fixed Graph.
type Colony struct {
	g    *core.Graph
	opts Options

	ph          *Pheromone
	tau0        float64
	globalBest  Tour
	haveBest    bool
	history     []float64
	iteration   int
	noImprove   int
	initialized bool
	cancelled   atomic.Bool
	callback    ProgressCallback
}

// NewColony validates opts and returns a Colony over g. Call Initialize
// before Solve.
func NewColony(g *core.Graph, opts Options) (*Colony, error) {
	if g == nil || g.N() < 2 {
		return nil, ErrInvalidGraph
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Colony{g: g, opts: opts}, nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Configuration setters (spec §6 Core API)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

func (c *Colony) SetUseParallel(use bool)            { c.opts.UseParallel = use }
func (c *Colony) SetNumThreads(n int)                { c.opts.NumThreads = n }
func (c *Colony) SetUseLocalSearch(use bool)         { c.opts.UseLocalSearch = use }
func (c *Colony) SetUse3Opt(use bool)                { c.opts.Use3Opt = use }
func (c *Colony) SetLocalSearchMode(m LocalSearchMode) { c.opts.LocalSearchMode = m }
func (c *Colony) SetVariant(v Variant)               { c.opts.Variant = v }
func (c *Colony) SetElitistWeight(e float64)         { c.opts.ElitistWeight = e }
func (c *Colony) SetRankSize(r int)                  { c.opts.RankSize = r }
func (c *Colony) SetConvergenceThreshold(k int)      { c.opts.ConvergenceThreshold = k }
func (c *Colony) SetCallbackInterval(i int)          { c.opts.CallbackInterval = i }
func (c *Colony) SetProgressCallback(fn ProgressCallback) { c.callback = fn }

// Options returns a copy of the colony's current configuration.
func (c *Colony) Options() Options { return c.opts }

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Lifecycle
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Initialize (re)sets pheromone to τ₀ = M/L_nn and clears run state. It
// must be called before Solve, and may be called again to start a fresh
// run with the same or updated configuration.
func (c *Colony) Initialize() error {
	if err := validateOptions(c.opts); err != nil {
		return err
	}

	lnn := c.g.NearestNeighborTourLength()
	if lnn <= 0 {
		return ErrInvalidGraph
	}
	c.tau0 = float64(c.opts.NumAnts) / lnn

	ph, err := NewPheromone(c.g.N())
	if err != nil {
		return err
	}
	ph.Initialize(c.tau0)
	c.ph = ph

	c.history = nil
	c.haveBest = false
	c.globalBest = Tour{}
	c.iteration = 0
	c.noImprove = 0
	c.cancelled.Store(false)
	c.initialized = true

	return nil
}

// Cancel requests termination. Solve polls this flag between iterations
// and returns the best tour found so far; the current iteration (if any)
// finishes first.
func (c *Colony) Cancel() { c.cancelled.Store(true) }

// GetConvergenceData returns a copy of the per-iteration best distances
// recorded so far.
func (c *Colony) GetConvergenceData() []float64 {
	out := make([]float64, len(c.history))
	copy(out, c.history)

	return out
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Solve
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Solve runs the iteration loop. maxIters ≥ 0 runs exactly that many
// iterations (subject to cancellation); maxIters < 0 runs in convergence
// mode, stopping once ConvergenceThreshold consecutive iterations fail to
// improve the global best.
func (c *Colony) Solve(maxIters int) (Result, error) {
	if !c.initialized {
		return Result{}, ErrNotInitialized
	}

	convergenceMode := maxIters < 0

	for {
		if c.cancelled.Load() {
			return c.result(true), nil
		}
		if !convergenceMode && c.iteration >= maxIters {
			break
		}
		if convergenceMode && c.noImprove >= c.opts.ConvergenceThreshold {
			break
		}

		if err := c.runIteration(); err != nil {
			return Result{}, err
		}

		c.iteration++

		if c.callback != nil && c.opts.CallbackInterval > 0 && c.iteration%c.opts.CallbackInterval == 0 {
			c.callback(ProgressEvent{
				Iteration:    c.iteration - 1,
				BestDistance: c.globalBest.Distance,
				BestSequence: CopyTour(c.globalBest.Sequence),
				History:      c.GetConvergenceData(),
			})
		}

		if c.cancelled.Load() {
			return c.result(true), nil
		}
	}

	return c.result(false), nil
}

func (c *Colony) result(cancelled bool) Result {
	return Result{
		Tour:       c.globalBest.Clone(),
		Iterations: c.iteration,
		Cancelled:  cancelled,
	}
}

// runIteration executes one full pass: construct, improve, update global
// best, record history, evaporate, deposit.
func (c *Colony) runIteration() error {
	tours := c.constructAll(c.iteration)

	n := c.g.N()
	for _, t := range tours {
		if err := t.Validate(n); err != nil {
			return ErrInternalError
		}
	}

	bestIdx := argmin(tours)

	if c.opts.UseLocalSearch {
		switch c.opts.LocalSearchMode {
		case LocalSearchBest:
			improved, err := c.improve(tours[bestIdx])
			if err != nil {
				return ErrInternalError
			}
			tours[bestIdx] = improved
		case LocalSearchAll:
			for i := range tours {
				improved, err := c.improve(tours[i])
				if err != nil {
					return ErrInternalError
				}
				tours[i] = improved
			}
			bestIdx = argmin(tours)
		case LocalSearchNone:
			// no-op
		}
	}

	iterationBest := tours[bestIdx]
	if !c.haveBest || iterationBest.Distance < c.globalBest.Distance {
		c.globalBest = iterationBest.Clone()
		c.haveBest = true
		c.noImprove = 0
	} else {
		c.noImprove++
	}

	c.history = append(c.history, iterationBest.Distance)

	c.ph.Evaporate(c.opts.Rho)
	c.deposit(tours)

	return nil
}

// improve applies 2-opt, and if Use3Opt is set, alternates 2-opt/3-opt up
// to maxLocalSearchOuterRounds times or until no further improvement.
func (c *Colony) improve(t Tour) (Tour, error) {
	cur, err := TwoOpt(c.g, t)
	if err != nil {
		return Tour{}, err
	}
	if !c.opts.Use3Opt {
		return cur, nil
	}

	for round := 0; round < maxLocalSearchOuterRounds; round++ {
		before := cur.Distance

		cur, err = ThreeOpt(c.g, cur)
		if err != nil {
			return Tour{}, err
		}
		cur, err = TwoOpt(c.g, cur)
		if err != nil {
			return Tour{}, err
		}

		if cur.Distance >= before-twoOptEps {
			break
		}
	}

	return cur, nil
}

// constructAll builds one Tour per ant for the given iteration, in
// parallel when UseParallel is set. Ant RNG streams are seeded
// deterministically from (Options.Seed, iteration, ant index), so the
// result does not depend on goroutine scheduling order.
func (c *Colony) constructAll(iteration int) []Tour {
	m := c.opts.NumAnts
	tours := make([]Tour, m)

	build := func(a int) Tour {
		rng := rand.New(rand.NewSource(antSeed(c.opts.Seed, iteration, a)))
		return Ant{}.Construct(c.g, c.ph, c.opts.Alpha, c.opts.Beta, rng)
	}

	if !c.opts.UseParallel || m == 1 {
		for a := 0; a < m; a++ {
			tours[a] = build(a)
		}

		return tours
	}

	threads := c.opts.NumThreads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > m {
		threads = m
	}

	jobs := make(chan int, m)
	for a := 0; a < m; a++ {
		jobs <- a
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for a := range jobs {
				tours[a] = build(a)
			}
		}()
	}
	wg.Wait()

	return tours
}

// argmin returns the index of the shortest tour, ties broken by the
// lowest index (ant order), matching the reproducibility contract of
// spec §5 ("ties broken by ant index").
func argmin(tours []Tour) int {
	best := 0
	for i := 1; i < len(tours); i++ {
		if tours[i].Distance < tours[best].Distance {
			best = i
		}
	}

	return best
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Pheromone deposit variants (spec §4.7 step 7)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

func (c *Colony) deposit(tours []Tour) {
	switch c.opts.Variant {
	case VariantAS:
		c.depositAS(tours)
	case VariantElitist:
		c.depositAS(tours)
		c.ph.DepositTour(c.globalBest.Sequence, c.opts.ElitistWeight*c.opts.Q, c.globalBest.Distance)
	case VariantRank:
		c.depositRank(tours)
		c.ph.DepositTour(c.globalBest.Sequence, float64(c.opts.RankSize)*c.opts.Q, c.globalBest.Distance)
	}
}

func (c *Colony) depositAS(tours []Tour) {
	for _, t := range tours {
		c.ph.DepositTour(t.Sequence, c.opts.Q, t.Distance)
	}
}

// depositRank sorts a copy of tours ascending by distance and deposits
// (r−rank)·Q/L_a on every edge of each of the top RankSize ants' tours,
// rank starting at 1 for the shortest tour.
func (c *Colony) depositRank(tours []Tour) {
	ranked := make([]Tour, len(tours))
	copy(ranked, tours)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Distance < ranked[j].Distance })

	r := c.opts.RankSize
	if r > len(ranked) {
		r = len(ranked)
	}

	for idx := 0; idx < r; idx++ {
		rank := idx + 1
		weight := float64(r - rank)
		if weight <= 0 {
			continue
		}
		c.ph.DepositTour(ranked[idx].Sequence, weight*c.opts.Q, ranked[idx].Distance)
	}
}
