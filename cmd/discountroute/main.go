// Command discountroute prints the cheapest route between two nodes of a
// weighted undirected graph, first at full price and then with the single
// best edge discounted to half its weight.
//
// Usage:
//
//	discountroute solve graph.txt
//	discountroute solve --config run.yaml --workers 4 --dot route.dot graph.yaml
//	discountroute dot graph.txt > route.dot
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		logrus.WithError(err).Fatal("discountroute failed")
	}
}
