// Package discountroute finds the cheapest route between two nodes of a
// weighted undirected graph, and the cheapest route once a single edge of
// the caller's choosing is discounted to half its weight.
//
// What is inside?
//
//	A small, thread-safe library and a CLI on top of it:
//		• Dense adjacency-matrix graph with cheap one-edge override views
//		• Dijkstra shortest path with route reconstruction
//		• Exhaustive one-edge discount search, sequential or on a worker pool
//		• Matrix-text and YAML problem loaders
//		• Plain, styled and Graphviz DOT reports
//
// Everything is organized under these packages:
//
//	core/      Graph, Weights and the Override view
//	dijkstra/  ShortestPath and Result
//	discount/  Search, Outcome, observers and options
//	loader/    problem files (matrix text, YAML)
//	report/    result lines and DOT rendering
//	config/    YAML run configuration
//	logging/   logrus setup and per-trial tracing
//	metrics/   Prometheus recorder
//	cmd/discountroute/  the CLI
//
// Quick example (nodes 0..2, start 0, end 2):
//
//	0───4───1
//	 \      │
//	  10    4
//	    \   │
//	      2
//
// costs 8 along [0, 1, 2] at full price and 5 along [0, 2] once 0-2 is halved.
//
//	go install github.com/katalvlaran/discountroute/cmd/discountroute@latest
package discountroute
