// File: methods.go
// Role: Weight mutation and queries on Graph.
// Determinism:
//   - Edges() is ordered row-major over the upper triangle (u <= v).
// Concurrency:
//   - SetEdge takes the write lock; all queries take the read lock.

package core

import "fmt"

// SetEdge stores weight w for the undirected pair {u, v}.
// Both (u,v) and (v,u) are written so the matrix stays symmetric.
//
// The weight is not validated: NoEdge removes the pair, any other value is
// stored as-is. Returns ErrOutOfRange if u or v lies outside [0, n).
//
// Complexity: O(1).
func (g *Graph) SetEdge(u, v int, w int64) error {
	if err := g.checkPair(u, v); err != nil {
		return err
	}
	g.mu.Lock()
	g.cells[u*g.n+v] = w
	g.cells[v*g.n+u] = w
	g.mu.Unlock()

	return nil
}

// Weight returns the weight stored for {u, v}, or NoEdge if none was set.
//
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (int64, error) {
	if err := g.checkPair(u, v); err != nil {
		return NoEdge, err
	}
	g.mu.RLock()
	w := g.cells[u*g.n+v]
	g.mu.RUnlock()

	return w, nil
}

// HasEdge reports whether {u, v} carries an edge. Out-of-range indices
// report false.
func (g *Graph) HasEdge(u, v int) bool {
	w, err := g.Weight(u, v)

	return err == nil && w != NoEdge
}

// Size returns the node count n.
func (g *Graph) Size() int {
	return g.n
}

// Edges returns every connected pair once, with U <= V, in row-major order.
// Self-loops are included when present.
//
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	var u, v int
	var w int64
	for u = 0; u < g.n; u++ {
		for v = u; v < g.n; v++ {
			if w = g.cells[u*g.n+v]; w != NoEdge {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}

	return out
}

// checkPair validates both indices against [0, n).
func (g *Graph) checkPair(u, v int) error {
	if g == nil {
		return ErrNilGraph
	}
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: u=%d, n=%d", ErrOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: v=%d, n=%d", ErrOutOfRange, v, g.n)
	}

	return nil
}
