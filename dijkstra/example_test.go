// Package dijkstra_test provides examples demonstrating how to use ShortestPath.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/discountroute/core"
	"github.com/katalvlaran/discountroute/dijkstra"
)

// ExampleShortestPath_triangle shows two cheap hops beating one expensive edge.
func ExampleShortestPath_triangle() {
	// 1) Three nodes: 0-1 and 1-2 cost 4 each, the direct 0-2 costs 10.
	g, _ := core.NewGraph(3)
	_ = g.SetEdge(0, 1, 4)
	_ = g.SetEdge(1, 2, 4)
	_ = g.SetEdge(0, 2, 10)

	// 2) Route from 0 to 2.
	res, err := dijkstra.ShortestPath(g, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%.1f path=%v\n", res.Cost, res.Path)
	// Output: cost=8.0 path=[0 1 2]
}

// ExampleShortestPath_unreachable shows the result for a node with no edges.
func ExampleShortestPath_unreachable() {
	g, _ := core.NewGraph(3)
	_ = g.SetEdge(0, 1, 2)

	res, _ := dijkstra.ShortestPath(g, 0, 2)
	fmt.Println(res.Reachable(), res.Cost, len(res.Path))
	// Output: false +Inf 0
}
