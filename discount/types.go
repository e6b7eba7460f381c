// SPDX-License-Identifier: MIT
package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/discountroute/dijkstra"
)

// Sentinel errors returned by the discount search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("discount: graph is nil")

	// ErrBadWorkers indicates that WithWorkers was given a value below 1.
	ErrBadWorkers = errors.New("discount: workers must be >= 1")

	// ErrBadEnumeration indicates an unknown enumeration name.
	ErrBadEnumeration = errors.New("discount: unknown enumeration")
)

// Enumeration selects the order in which candidate edges are tried.
type Enumeration int

const (
	// EnumerateOrderedPairs visits every matrix cell (u, v) row-major.
	EnumerateOrderedPairs Enumeration = iota

	// EnumerateUpperTriangle visits only cells with u <= v, row-major.
	EnumerateUpperTriangle
)

// String returns the configuration name of e.
func (e Enumeration) String() string {
	switch e {
	case EnumerateOrderedPairs:
		return "ordered-pairs"
	case EnumerateUpperTriangle:
		return "upper-triangle"
	default:
		return fmt.Sprintf("Enumeration(%d)", int(e))
	}
}

// ParseEnumeration maps a configuration name back to an Enumeration.
// The empty string selects EnumerateOrderedPairs.
func ParseEnumeration(s string) (Enumeration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ordered-pairs":
		return EnumerateOrderedPairs, nil
	case "upper-triangle":
		return EnumerateUpperTriangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadEnumeration, s)
	}
}

// Edge describes one discount candidate.
type Edge struct {
	U, V     int   // matrix cell that was enumerated
	Original int64 // weight before the discount
	Halved   int64 // Original / 2
}

// Trial is the evaluation of a single candidate.
type Trial struct {
	Index    int             // position in enumeration order
	Edge     Edge            // the discounted edge
	Result   dijkstra.Result // route on the discounted view
	Improved bool            // strictly cheaper than every earlier trial
	Elapsed  time.Duration   // wall time of the ShortestPath call
}

// Outcome is the full result of a Search.
//
// Baseline is the undiscounted route. Discounted is the best route over all
// trials, or an unreachable result when no trial produced a finite cost.
// Edge identifies the winning candidate and is meaningful only when HasEdge.
type Outcome struct {
	Start, End int
	Baseline   dijkstra.Result
	Discounted dijkstra.Result
	Edge       Edge
	Trials     int

	found bool
}

// HasEdge reports whether some trial produced a finite route.
func (o Outcome) HasEdge() bool {
	return o.found
}

// Observer receives every trial after evaluation, in enumeration order.
type Observer interface {
	TrialDone(Trial)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Trial)

// TrialDone calls f(t).
func (f ObserverFunc) TrialDone(t Trial) { f(t) }

// Observers fans a trial out to several observers. Nil entries are skipped.
func Observers(obs ...Observer) Observer {
	return ObserverFunc(func(t Trial) {
		for _, o := range obs {
			if o != nil {
				o.TrialDone(t)
			}
		}
	})
}

// Options configures Search.
//
// Enumeration – candidate order (default EnumerateOrderedPairs).
// Workers     – number of goroutines evaluating trials (default 1).
// Observer    – optional per-trial callback (default nil).
type Options struct {
	Enumeration Enumeration
	Workers     int
	Observer    Observer
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithEnumeration sets the candidate enumeration order.
func WithEnumeration(e Enumeration) Option {
	return func(o *Options) {
		o.Enumeration = e
	}
}

// WithWorkers sets how many trials may be evaluated concurrently.
// Panics with ErrBadWorkers if workers < 1.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = workers
	}
}

// WithObserver installs a per-trial observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns sequential ordered-pairs evaluation with no observer.
func DefaultOptions() Options {
	return Options{
		Enumeration: EnumerateOrderedPairs,
		Workers:     1,
	}
}
