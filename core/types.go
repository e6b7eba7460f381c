// SPDX-License-Identifier: MIT
// Package core defines the Graph type, its read interface and the sentinel
// errors shared by every package that consumes a Graph.
//
// Errors:
//
//	ErrInvalidSize - node count is not positive.
//	ErrOutOfRange  - node index outside [0, n).
//	ErrNilGraph    - nil *Graph receiver or argument.
package core

import (
	"errors"
	"sync"
)

// NoEdge is the absence marker stored in cells that carry no edge.
const NoEdge int64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates NewGraph was asked for a non-positive node count.
	ErrInvalidSize = errors.New("core: node count must be > 0")

	// ErrOutOfRange indicates a node index outside [0, n).
	ErrOutOfRange = errors.New("core: node index out of range")

	// ErrNilGraph indicates a nil *Graph was used.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Weights is the read-only surface shortest-path algorithms need.
//
// Size reports the node count n. Weight returns the weight stored for the
// unordered pair {u, v}, NoEdge when the pair is not connected, or
// ErrOutOfRange when either index lies outside [0, n).
type Weights interface {
	Size() int
	Weight(u, v int) (int64, error)
}

// Edge is one undirected connection as reported by Graph.Edges.
// U <= V always holds.
type Edge struct {
	U, V   int
	Weight int64
}

// Graph is an undirected weighted graph over nodes 0..n-1 backed by a
// row-major n×n matrix.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu    sync.RWMutex
	n     int
	cells []int64 // cells[u*n+v]
}

// NewGraph allocates a graph with n nodes and no edges.
//
// Every cell starts as NoEdge. Returns ErrInvalidSize if n <= 0.
//
// Complexity: O(n²) time and memory.
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([]int64, n*n)
	for i := range cells {
		cells[i] = NoEdge
	}

	return &Graph{n: n, cells: cells}, nil
}

// compile-time interface checks
var (
	_ Weights = (*Graph)(nil)
	_ Weights = (*Override)(nil)
)
