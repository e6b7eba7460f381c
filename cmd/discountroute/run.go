package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/discountroute/config"
	"github.com/katalvlaran/discountroute/discount"
	"github.com/katalvlaran/discountroute/loader"
	"github.com/katalvlaran/discountroute/logging"
	"github.com/katalvlaran/discountroute/metrics"
	"github.com/katalvlaran/discountroute/report"
)

// run is the state shared by solve and dot.
type run struct {
	cfg     config.Config
	log     *logrus.Entry
	problem *loader.Problem
	rec     *metrics.Recorder
}

// prepare builds the logger and loads the problem with endpoint overrides.
func prepare(cfg config.Config, stderr io.Writer) (*run, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		return nil, err
	}
	entry := logger.WithField("run_id", uuid.NewString())

	var opts []loader.Option
	if cfg.Lenient {
		opts = append(opts, loader.WithLenientSymmetry())
	}
	p, err := loader.Load(cfg.Input, opts...)
	if err != nil {
		entry.WithError(err).WithField("input", cfg.Input).Error("load problem failed")
		return nil, err
	}
	if cfg.Start != nil {
		p.Start = *cfg.Start
	}
	if cfg.End != nil {
		p.End = *cfg.End
	}
	entry.WithFields(logrus.Fields{
		"input": cfg.Input,
		"nodes": p.Graph.Size(),
		"start": p.Start,
		"end":   p.End,
	}).Info("problem loaded")

	return &run{cfg: cfg, log: entry, problem: p, rec: metrics.NewRecorder()}, nil
}

// search runs the discount search with trial logging and metrics attached.
func (r *run) search() (discount.Outcome, error) {
	enum, err := discount.ParseEnumeration(r.cfg.Enumeration)
	if err != nil {
		return discount.Outcome{}, err
	}

	began := time.Now()
	out, err := discount.Search(r.problem.Graph, r.problem.Start, r.problem.End,
		discount.WithEnumeration(enum),
		discount.WithWorkers(r.cfg.Workers),
		discount.WithObserver(discount.Observers(logging.TrialLogger{Log: r.log}, r.rec)),
	)
	if err != nil {
		r.log.WithError(err).Error("search failed")
		return discount.Outcome{}, err
	}
	elapsed := time.Since(began)
	r.rec.ObserveOutcome(out, elapsed)
	r.log.WithFields(logging.OutcomeFields(out)).WithField("elapsed", elapsed).Info("search done")

	return out, nil
}

func solve(cfg config.Config, stdout, stderr io.Writer) error {
	r, err := prepare(cfg, stderr)
	if err != nil {
		return err
	}
	out, err := r.search()
	if err != nil {
		return err
	}

	var rn report.Renderer = report.Plain{}
	if cfg.Output.Color {
		rn = report.NewStyled()
	}
	if err = report.Outcome(stdout, rn, out); err != nil {
		return err
	}

	if cfg.Output.DOT != "" {
		text, err := report.DOT(r.problem.Graph, out)
		if err != nil {
			return err
		}
		if err = os.WriteFile(cfg.Output.DOT, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		r.log.WithField("path", cfg.Output.DOT).Debug("dot written")
	}
	if cfg.Output.MetricsFile != "" {
		if err = r.rec.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		r.log.WithField("path", cfg.Output.MetricsFile).Debug("metrics written")
	}

	return nil
}

func dot(cfg config.Config, stdout, stderr io.Writer) error {
	r, err := prepare(cfg, stderr)
	if err != nil {
		return err
	}
	out, err := r.search()
	if err != nil {
		return err
	}
	text, err := report.DOT(r.problem.Graph, out)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, text)

	return err
}
