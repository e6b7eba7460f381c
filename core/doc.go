// Package core provides the fixed-size, undirected, weighted Graph that every
// other discountroute package builds on.
//
// The Graph G = (V,E) is stored as a dense n×n adjacency matrix:
//
//   - Nodes are zero-based integer indices 0..n-1, fixed at construction.
//   - Every cell holds either a non-negative integer weight or NoEdge (-1).
//   - The matrix is symmetric: SetEdge(u,v,w) writes both (u,v) and (v,u).
//   - Weight lookups are O(1); neighbor scans are O(n).
//   - A sync.RWMutex guards the matrix so concurrent readers are safe.
//
// Why a matrix?
//
//   - Inputs arrive as an edge-weight matrix already; no translation is needed.
//   - Shortest-path runs on small dense graphs touch every cell anyway.
//   - Overriding a single pair is trivial, which is exactly what the discount
//     search needs.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)            // O(n²), ErrInvalidSize if n <= 0
//	SetEdge(u, v int, w int64) error          // O(1), writes both directions
//	Weight(u, v int) (int64, error)           // O(1), NoEdge if absent
//	HasEdge(u, v int) bool                    // O(1)
//	Size() int                                // O(1)
//	Edges() []Edge                            // O(n²), u <= v, row-major
//	Clone() *Graph                            // O(n²) deep copy
//	Equal(other *Graph) bool                  // O(n²) cell-by-cell comparison
//
// Views:
//
//	WithEdgeOverride(u, v int, w int64) (*Override, error)
//	    A read-only view identical to the graph except for one undirected
//	    pair. The base graph is never touched, so any number of overrides can
//	    be evaluated concurrently against one shared Graph.
//
// Both *Graph and *Override satisfy the Weights interface consumed by the
// dijkstra package.
//
// Errors:
//
//	ErrInvalidSize – node count is zero or negative
//	ErrOutOfRange  – a node index lies outside [0, n)
//	ErrNilGraph    – a nil *Graph was passed where one is required
package core
