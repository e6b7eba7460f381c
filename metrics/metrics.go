// Package metrics instruments discount searches with Prometheus collectors.
//
// Each Recorder owns a private registry so repeated runs in one process (and
// parallel tests) never collide on metric names. Batch runs dump the registry
// with WriteTextfile for the node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/discountroute/discount"
)

// Trial result labels.
const (
	ResultImproved    = "improved"
	ResultKept        = "kept"
	ResultUnreachable = "unreachable"
)

// Recorder collects search metrics.
type Recorder struct {
	registry *prometheus.Registry

	TrialsTotal     *prometheus.CounterVec
	TrialDuration   prometheus.Histogram
	SearchDuration  prometheus.Histogram
	BaselineCost    prometheus.Gauge
	DiscountedCost  prometheus.Gauge
	CandidatesTotal prometheus.Counter
}

var _ discount.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.TrialsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discountroute_trials_total",
			Help: "Discount trials by result",
		},
		[]string{"result"},
	)
	r.TrialDuration = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "discountroute_trial_duration_seconds",
		Help:    "Shortest path duration per discount trial in seconds",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
	})
	r.SearchDuration = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "discountroute_search_duration_seconds",
		Help:    "Full discount search duration in seconds",
		Buckets: []float64{0.001, 0.01, 0.1, 1.0, 10.0, 60.0},
	})
	r.BaselineCost = f.NewGauge(prometheus.GaugeOpts{
		Name: "discountroute_baseline_cost",
		Help: "Undiscounted route cost of the last search, -1 if unreachable",
	})
	r.DiscountedCost = f.NewGauge(prometheus.GaugeOpts{
		Name: "discountroute_discounted_cost",
		Help: "Best discounted route cost of the last search, -1 if unreachable",
	})
	r.CandidatesTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "discountroute_candidates_total",
		Help: "Total number of candidate edges evaluated",
	})

	return r
}

// Registry returns the underlying registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// TrialDone records a single trial.
func (r *Recorder) TrialDone(t discount.Trial) {
	result := ResultKept
	switch {
	case !t.Result.Reachable():
		result = ResultUnreachable
	case t.Improved:
		result = ResultImproved
	}
	r.TrialsTotal.WithLabelValues(result).Inc()
	r.TrialDuration.Observe(t.Elapsed.Seconds())
}

// ObserveOutcome records the result of a finished search.
func (r *Recorder) ObserveOutcome(o discount.Outcome, elapsed time.Duration) {
	r.SearchDuration.Observe(elapsed.Seconds())
	r.CandidatesTotal.Add(float64(o.Trials))
	r.BaselineCost.Set(gaugeCost(o.Baseline.Cost, o.Baseline.Reachable()))
	r.DiscountedCost.Set(gaugeCost(o.Discounted.Cost, o.Discounted.Reachable()))
}

// WriteTextfile writes the registry in the Prometheus text format to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

func gaugeCost(cost float64, reachable bool) float64 {
	if !reachable {
		return -1
	}

	return cost
}
