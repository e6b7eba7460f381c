// Package dijkstra defines the Result type and the sentinel errors returned
// by ShortestPath.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrOutOfRange      if start or end is not a node of the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/discountroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOutOfRange indicates that start or end is outside [0, n).
	// It wraps core.ErrOutOfRange so either sentinel matches via errors.Is.
	ErrOutOfRange = fmt.Errorf("dijkstra: %w", core.ErrOutOfRange)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Unreachable is the cost reported when no route exists.
var Unreachable = math.Inf(1)

// Result is the outcome of one ShortestPath call.
//
// Cost is the sum of the edge weights along Path, or Unreachable.
// Path runs from start to end inclusive and is empty iff Cost is Unreachable.
type Result struct {
	Cost float64 // total route cost or Unreachable
	Path []int   // node indices start..end; nil when unreachable
}

// Reachable reports whether the result carries a finite route.
func (r Result) Reachable() bool {
	return !math.IsInf(r.Cost, 1)
}

// unreachable builds the canonical "no route" result.
func unreachable() Result {
	return Result{Cost: Unreachable}
}
