package discount

import (
	"fmt"
	"time"

	"github.com/katalvlaran/discountroute/core"
	"github.com/katalvlaran/discountroute/dijkstra"
)

// Search computes the undiscounted route from start to end and the best route
// obtainable by halving exactly one positive-weight edge.
//
// Steps:
//  1. Baseline = dijkstra.ShortestPath(g, start, end).
//  2. Collect candidates in the configured enumeration order, skipping cells
//     that are core.NoEdge or not strictly positive.
//  3. For each candidate, route on g.WithEdgeOverride(u, v, w/2).
//  4. Keep the first trial with the strictly lowest cost.
//
// g is only read. Errors from the baseline or any trial abort the search.
func Search(g *core.Graph, start, end int, opts ...Option) (Outcome, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return Outcome{}, ErrNilGraph
	}

	// 3) Baseline route, reported separately from the discount result.
	baseline, err := dijkstra.ShortestPath(g, start, end)
	if err != nil {
		return Outcome{}, fmt.Errorf("discount: baseline route: %w", err)
	}

	// 4) Evaluate every candidate.
	cands := candidates(g, cfg.Enumeration)
	trials, err := evaluate(g, start, end, cands, cfg.Workers)
	if err != nil {
		return Outcome{}, err
	}

	// 5) Merge in enumeration order with a strict "<".
	out := Outcome{
		Start:      start,
		End:        end,
		Baseline:   baseline,
		Discounted: dijkstra.Result{Cost: dijkstra.Unreachable},
		Trials:     len(trials),
	}
	for i := range trials {
		t := &trials[i]
		if t.Result.Cost < out.Discounted.Cost {
			t.Improved = true
			out.Discounted = t.Result
			out.Edge = t.Edge
			out.found = true
		}
		if cfg.Observer != nil {
			cfg.Observer.TrialDone(*t)
		}
	}

	return out, nil
}

// candidates lists the discountable cells of g in enumeration order.
func candidates(g *core.Graph, e Enumeration) []Edge {
	n := g.Size()
	var out []Edge
	var u, v, from int
	var w int64
	for u = 0; u < n; u++ {
		from = 0
		if e == EnumerateUpperTriangle {
			from = u
		}
		for v = from; v < n; v++ {
			w, _ = g.Weight(u, v) // indices are in range by construction
			if w == core.NoEdge || w <= 0 {
				continue
			}
			out = append(out, Edge{U: u, V: v, Original: w, Halved: w / 2})
		}
	}

	return out
}

// evaluate runs one trial per candidate and returns them indexed by
// enumeration position. With workers > 1 trials run on a worker pool.
func evaluate(g *core.Graph, start, end int, cands []Edge, workers int) ([]Trial, error) {
	trials := make([]Trial, len(cands))
	errs := make([]error, len(cands))

	run := func(i int) {
		trials[i], errs[i] = runTrial(g, start, end, i, cands[i])
	}

	if workers <= 1 || len(cands) < 2 {
		for i := range cands {
			run(i)
			if errs[i] != nil {
				return nil, errs[i]
			}
		}

		return trials, nil
	}

	pool := newWorkerPool(workers)
	for i := range cands {
		i := i
		pool.Submit(func() { run(i) })
	}
	pool.Wait()

	// Report the first failure in enumeration order.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return trials, nil
}

// runTrial routes on a view where the candidate edge is halved.
func runTrial(g *core.Graph, start, end, index int, e Edge) (Trial, error) {
	view, err := g.WithEdgeOverride(e.U, e.V, e.Halved)
	if err != nil {
		return Trial{}, fmt.Errorf("discount: override %d-%d: %w", e.U, e.V, err)
	}
	began := time.Now()
	res, err := dijkstra.ShortestPath(view, start, end)
	if err != nil {
		return Trial{}, fmt.Errorf("discount: trial %d (%d-%d): %w", index, e.U, e.V, err)
	}

	return Trial{Index: index, Edge: e, Result: res, Elapsed: time.Since(began)}, nil
}
