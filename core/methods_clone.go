// File: methods_clone.go
// Role: Copying and comparing whole graphs.
// Concurrency:
//   - Read locks on every source; the clone is a fresh instance.

package core

// Clone returns a deep copy of g. Mutating the clone never affects g.
//
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cells := make([]int64, len(g.cells))
	copy(cells, g.cells)

	return &Graph{n: g.n, cells: cells}
}

// Equal reports whether g and other have the same size and identical
// weights in every cell. Two nil graphs are equal.
//
// Complexity: O(n²).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if g.n != other.n {
		return false
	}
	for i, w := range g.cells {
		if other.cells[i] != w {
			return false
		}
	}

	return true
}
