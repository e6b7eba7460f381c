// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - An Override answers exactly like its base except for one unordered pair.
// Concurrency:
//   - Read locks on the base only; many overrides may share one base.

package core

// Override is a read-only view of a Graph in which a single undirected pair
// {U, V} reports a replacement weight. All other lookups delegate to the base.
//
// An Override holds no copy of the matrix, so creating one is O(1).
// Mutating the base after the view was created is visible through the view.
type Override struct {
	base   *Graph
	u, v   int
	weight int64
}

// WithEdgeOverride returns a view of g where {u, v} weighs w.
// g itself is not modified. Returns ErrOutOfRange for bad indices.
//
// Complexity: O(1).
func (g *Graph) WithEdgeOverride(u, v int, w int64) (*Override, error) {
	if err := g.checkPair(u, v); err != nil {
		return nil, err
	}

	return &Override{base: g, u: u, v: v, weight: w}, nil
}

// Size returns the node count of the base graph.
func (o *Override) Size() int {
	return o.base.Size()
}

// Weight returns the overridden weight for {U, V} and the base weight
// for any other pair.
func (o *Override) Weight(u, v int) (int64, error) {
	if err := o.base.checkPair(u, v); err != nil {
		return NoEdge, err
	}
	if (u == o.u && v == o.v) || (u == o.v && v == o.u) {
		return o.weight, nil
	}

	return o.base.Weight(u, v)
}

// Pair returns the overridden endpoints as given to WithEdgeOverride.
func (o *Override) Pair() (u, v int) {
	return o.u, o.v
}
