// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense
// undirected graph.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all cells (O(n²)) to detect negative weights and fail fast.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring
//     entries whose distance is larger than the best known one.
//   - Relaxation uses a strict "<", so among equal-cost routes the first one discovered
//     (lowest-index neighbor of the earliest-settled node) is kept.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/discountroute/core"
)

// ShortestPath computes the minimum-cost route from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must lie in [0, g.Size()) (ErrOutOfRange).
//  3. No cell other than core.NoEdge may be negative (ErrNegativeWeight).
//
// An unreachable end is not an error: the returned Result has Cost == Unreachable
// and an empty Path.
//
// Complexity:
//
//   - Time:  O(n² log n)
//   - Space: O(n²)
func ShortestPath(g core.Weights, start, end int) (Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return unreachable(), ErrNilGraph
	}
	if gg, ok := g.(*core.Graph); ok && gg == nil {
		return unreachable(), ErrNilGraph
	}

	// 2) Validate endpoints
	n := g.Size()
	if start < 0 || start >= n {
		return unreachable(), fmt.Errorf("%w: start=%d, n=%d", ErrOutOfRange, start, n)
	}
	if end < 0 || end >= n {
		return unreachable(), fmt.Errorf("%w: end=%d, n=%d", ErrOutOfRange, end, n)
	}

	// 3) Pre-scan all cells to detect negative weights.
	if err := scanNegative(g); err != nil {
		return unreachable(), err
	}

	// 4) Run the main loop.
	r := newRunner(g, start)
	if err := r.process(); err != nil {
		return unreachable(), err
	}

	return r.result(end), nil
}

// scanNegative fails with ErrNegativeWeight on the first negative non-NoEdge cell.
func scanNegative(g core.Weights) error {
	n := g.Size()
	var u, v int
	var w int64
	var err error
	for u = 0; u < n; u++ {
		for v = u; v < n; v++ {
			if w, err = g.Weight(u, v); err != nil {
				return err
			}
			if w < 0 && w != core.NoEdge {
				return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g     core.Weights // The input graph; read-only.
	start int          // Source node.
	dist  []float64    // dist[v] = best known distance from start.
	prev  []int        // prev[v] = predecessor on the best route, or -1.
	pq    nodePQ       // Min-heap for the lazy priority queue.
}

// newRunner sets dist to +Inf, prev to -1 and seeds the heap with (0, start).
func newRunner(g core.Weights, start int) *runner {
	n := g.Size()
	r := &runner{
		g:     g,
		start: start,
		dist:  make([]float64, n),
		prev:  make([]int, n),
		pq:    make(nodePQ, 0, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r
}

// process repeatedly extracts the closest node and relaxes its edges
// until the heap is empty.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was recorded after this push.
		if item.dist > r.dist[item.id] {
			continue
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every neighbor v of u and improves dist[v] when going
// through u is strictly cheaper.
func (r *runner) relax(u int) error {
	n := r.g.Size()
	var v int
	var w int64
	var err error
	var newDist float64
	for v = 0; v < n; v++ {
		if w, err = r.g.Weight(u, v); err != nil {
			return fmt.Errorf("dijkstra: weight of %d-%d: %w", u, v, err)
		}
		if w == core.NoEdge {
			continue
		}

		newDist = r.dist[u] + float64(w)
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// result walks prev back from end and packages cost and route.
func (r *runner) result(end int) Result {
	var path []int
	for at := end; at != -1; at = r.prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	// A lone node other than start means end has no predecessor: never reached.
	if len(path) == 1 && path[0] != r.start {
		return unreachable()
	}

	return Result{Cost: r.dist[end], Path: path}
}

// nodeItem represents a node and its distance from the source at push time.
type nodeItem struct {
	id   int     // node index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
