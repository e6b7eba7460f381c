// Package logging builds the logrus logger used by the CLI and traces
// discount trials through it.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/discountroute/discount"
	"github.com/katalvlaran/discountroute/report"
)

// ErrFormat indicates an unknown log format name.
var ErrFormat = errors.New("logging: unknown format")

// New returns a logger writing to w at the given level ("debug", "info", ...)
// in "text" or "json" format.
func New(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return logger, nil
}

// TrialLogger writes one debug entry per discount trial.
type TrialLogger struct {
	Log logrus.FieldLogger
}

var _ discount.Observer = TrialLogger{}

// TrialDone logs the candidate edge, the resulting cost and route.
func (l TrialLogger) TrialDone(t discount.Trial) {
	if l.Log == nil {
		return
	}
	l.Log.WithFields(logrus.Fields{
		"trial":    t.Index,
		"u":        t.Edge.U,
		"v":        t.Edge.V,
		"original": t.Edge.Original,
		"halved":   t.Edge.Halved,
		"cost":     report.FormatCost(t.Result),
		"route":    report.FormatRoute(t.Result),
		"improved": t.Improved,
		"elapsed":  t.Elapsed,
	}).Debug("discount trial")
}

// OutcomeFields summarises a search outcome for a single log entry.
func OutcomeFields(o discount.Outcome) logrus.Fields {
	f := logrus.Fields{
		"start":           o.Start,
		"end":             o.End,
		"trials":          o.Trials,
		"baseline_cost":   report.FormatCost(o.Baseline),
		"discounted_cost": report.FormatCost(o.Discounted),
	}
	if o.HasEdge() {
		f["discount_edge"] = fmt.Sprintf("%d-%d", o.Edge.U, o.Edge.V)
	}

	return f
}
