// Package discount finds the cheapest route between two nodes when exactly
// one existing edge may have its weight halved before routing.
//
// Overview:
//
//   - Search first computes the undiscounted baseline with dijkstra.ShortestPath.
//   - It then enumerates every candidate edge with a strictly positive weight,
//     halves it (integer division, truncating toward zero) in a core.Override view,
//     and routes again on that view.
//   - The lowest-cost trial wins. Ties go to the first candidate in enumeration
//     order: a later trial replaces the best only when strictly cheaper.
//
// Isolation:
//
//	Trials never write to the input graph. Each one reads through its own
//	O(1) override view, so the graph after Search is identical to the graph
//	before it, and trials can be evaluated concurrently (WithWorkers).
//	Concurrent results are merged in enumeration order, so the winner does not
//	depend on the worker count.
//
// Enumeration:
//
//   - EnumerateOrderedPairs (default): every cell (u, v) of the matrix in
//     row-major order. Each undirected edge is tried twice with identical effect.
//   - EnumerateUpperTriangle: cells with u <= v in row-major order. Every edge is
//     tried once. The winner is the same as with ordered pairs, because the first
//     row-major occurrence of any pair {a, b} is the cell (min, max).
//
// Options:
//
//	– WithEnumeration(Enumeration)   candidate order (default EnumerateOrderedPairs)
//	– WithWorkers(int)               concurrent trial evaluation (default 1)
//	– WithObserver(Observer)         receives every Trial in enumeration order
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrBadWorkers      (via panic) if WithWorkers receives a value < 1.
//	– ErrBadEnumeration  if ParseEnumeration does not recognise its input.
//	– errors from dijkstra.ShortestPath are wrapped and returned unchanged in kind.
//
// Complexity:
//
//   - Time:  O(C · n² log n) where C is the number of candidates (≤ n², or ≤ n(n+1)/2
//     with the upper triangle).
//   - Space: O(C) for the per-trial results plus O(n²) per running trial.
package discount
