package report

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/discountroute/core"
	"github.com/katalvlaran/discountroute/discount"
)

// DOT colors for route highlighting.
const (
	colorBaseline   = "blue"
	colorDiscounted = "red"
	colorBoth       = "purple"
	graphName       = "route"
)

// DOT renders g as an undirected Graphviz graph. Edges on the baseline route
// are blue, edges on the discounted route red (purple when on both), and the
// discounted edge is labelled "original->halved". Start and end nodes are
// drawn as double circles.
func DOT(g *core.Graph, o discount.Outcome) (string, error) {
	if g == nil {
		return "", core.ErrNilGraph
	}

	out := gographviz.NewGraph()
	if err := out.SetName(graphName); err != nil {
		return "", err
	}
	if err := out.SetDir(false); err != nil {
		return "", err
	}

	ends := map[int]bool{o.Start: true, o.End: true}
	for v := 0; v < g.Size(); v++ {
		attrs := map[string]string{}
		if ends[v] {
			attrs["shape"] = "doublecircle"
		}
		if err := out.AddNode(graphName, strconv.Itoa(v), attrs); err != nil {
			return "", fmt.Errorf("report: dot node %d: %w", v, err)
		}
	}

	onBase := routeEdges(o.Baseline.Path)
	onDisc := routeEdges(o.Discounted.Path)
	for _, e := range g.Edges() {
		key := [2]int{e.U, e.V}
		attrs := map[string]string{"label": strconv.FormatInt(e.Weight, 10)}
		if o.HasEdge() && key == pairKey(o.Edge.U, o.Edge.V) {
			attrs["label"] = strconv.Quote(fmt.Sprintf("%d->%d", o.Edge.Original, o.Edge.Halved))
			attrs["style"] = "dashed"
		}
		switch {
		case onBase[key] && onDisc[key]:
			attrs["color"] = colorBoth
			attrs["penwidth"] = "2"
		case onBase[key]:
			attrs["color"] = colorBaseline
			attrs["penwidth"] = "2"
		case onDisc[key]:
			attrs["color"] = colorDiscounted
			attrs["penwidth"] = "2"
		}
		if err := out.AddEdge(strconv.Itoa(e.U), strconv.Itoa(e.V), false, attrs); err != nil {
			return "", fmt.Errorf("report: dot edge %d-%d: %w", e.U, e.V, err)
		}
	}

	return out.String(), nil
}

// routeEdges indexes the consecutive pairs of a route by their sorted key.
func routeEdges(path []int) map[[2]int]bool {
	out := make(map[[2]int]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		out[pairKey(path[i], path[i+1])] = true
	}

	return out
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
