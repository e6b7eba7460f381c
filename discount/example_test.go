package discount_test

import (
	"fmt"

	"github.com/katalvlaran/discountroute/core"
	"github.com/katalvlaran/discountroute/discount"
)

// ExampleSearch compares the normal route with the best single-edge discount.
func ExampleSearch() {
	// 1) 0-1 and 1-2 cost 4, the direct 0-2 costs 10.
	g, _ := core.NewGraph(3)
	_ = g.SetEdge(0, 1, 4)
	_ = g.SetEdge(1, 2, 4)
	_ = g.SetEdge(0, 2, 10)

	// 2) Halving 0-2 to 5 beats any discount on the two-hop route (6).
	out, err := discount.Search(g, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("baseline=%.1f %v\n", out.Baseline.Cost, out.Baseline.Path)
	fmt.Printf("discounted=%.1f %v via %d-%d\n",
		out.Discounted.Cost, out.Discounted.Path, out.Edge.U, out.Edge.V)
	// Output:
	// baseline=8.0 [0 1 2]
	// discounted=5.0 [0 2] via 0-2
}
