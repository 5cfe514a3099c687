// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cogentcore.org/lexfold/text/syntax"
)

// Metrics are the Prometheus metrics of the watch command.
//
// Metrics:
//   - lexfold_edits_total: edits applied to the document
//   - lexfold_relexed_lines_total: lines re-tokenized by edits
//   - lexfold_full_relexes_total: re-tokenizations of the whole document
//   - lexfold_fold_rebuilds_total: rebuilds of the fold tree
//   - lexfold_lines: lines in the document
//   - lexfold_folds: folds in the document
//   - lexfold_update_seconds: time to apply one file change
type Metrics struct {
	Edits         prometheus.Counter
	RelexedLines  prometheus.Counter
	FullRelexes   prometheus.Counter
	FoldRebuilds  prometheus.Counter
	Lines         prometheus.Gauge
	Folds         prometheus.Gauge
	UpdateSeconds prometheus.Histogram
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Edits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lexfold",
			Name:      "edits_total",
			Help:      "Total number of edits applied to the document",
		}),
		RelexedLines: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lexfold",
			Name:      "relexed_lines_total",
			Help:      "Total number of lines re-tokenized by edits",
		}),
		FullRelexes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lexfold",
			Name:      "full_relexes_total",
			Help:      "Total number of times the whole document was tokenized",
		}),
		FoldRebuilds: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lexfold",
			Name:      "fold_rebuilds_total",
			Help:      "Total number of fold tree rebuilds",
		}),
		Lines: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lexfold",
			Name:      "lines",
			Help:      "Number of lines in the document",
		}),
		Folds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lexfold",
			Name:      "folds",
			Help:      "Number of folds in the document",
		}),
		UpdateSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lexfold",
			Name:      "update_seconds",
			Help:      "Time to apply one change of the file",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}

// observeRelex records one re-tokenization.
func (m *Metrics) observeRelex(rx syntax.Relex, rebuilt bool) {
	if rx.Full {
		m.FullRelexes.Inc()
	}
	m.RelexedLines.Add(float64(rx.NumLines()))
	if rebuilt {
		m.FoldRebuilds.Inc()
	}
}
