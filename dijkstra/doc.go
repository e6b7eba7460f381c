// Package dijkstra computes the minimum-cost route between two nodes of an
// undirected weighted graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from start over any core.Weights
//     (a *core.Graph or a *core.Override view) and reconstructs the route to end.
//   - It relies on a min-heap (container/heap) to always expand the next-closest node.
//   - Cells holding core.NoEdge are not edges; every other cell is traversable.
//
// Algorithm:
//
//  1. dist[start] = 0, every other dist = +Inf; prev[v] = -1 for all v.
//  2. Seed the heap with (0, start).
//  3. Pop the smallest entry; if its distance exceeds dist[u], it is stale and skipped.
//  4. For every v with an edge u-v: if dist[u]+w < dist[v], update dist[v], prev[v]=u
//     and push (dist[v], v).
//  5. Stop when the heap is empty.
//  6. Walk prev back from end, then reverse.
//  7. If the walk yields a lone node that is not start, end was never reached:
//     the result is Unreachable with an empty path.
//
// Performance and complexity:
//
//   - Time:  O(n² log n). The matrix forces an O(n) neighbor scan per extracted node,
//     and each relaxation may push one heap entry.
//   - Space: O(n²) worst-case heap entries under the lazy decrease-key strategy,
//     O(n) for dist and prev.
//
// Results:
//
//   - Result.Cost is a float64; Unreachable (+Inf) marks a missing route and is
//     always paired with an empty Path.
//   - start == end yields Cost 0 and Path [start].
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph argument is nil.
//   - ErrOutOfRange:      start or end lies outside [0, n). Wraps core.ErrOutOfRange.
//   - ErrNegativeWeight:  a cell other than core.NoEdge holds a negative weight
//     (detected by an O(n²) pre-scan before any relaxation).
//
// Thread safety:
//
//   - ShortestPath never mutates its input. Concurrent calls on the same graph are
//     safe as long as nobody writes to it meanwhile.
package dijkstra
