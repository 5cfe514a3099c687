// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"cogentcore.org/lexfold/base/errors"
	"cogentcore.org/lexfold/base/fsx"
	"cogentcore.org/lexfold/text/document"
	"cogentcore.org/lexfold/text/syntax"
)

type watchFlags struct {
	metricsAddr string
	debounce    time.Duration
}

func newWatchCommand(a *app) *cobra.Command {
	fl := &watchFlags{}
	cmd := &cobra.Command{
		Use:   "watch file",
		Short: "Watch a file and incrementally re-tokenize it as it changes",
		Long: `Watch a file, and each time it is saved apply the difference from the
previous version as edits to the document, re-tokenizing only the lines
that need it and updating the folds. Each change is logged with the lines
that were re-tokenized.

With --metrics-addr, Prometheus metrics are served at /metrics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDocument(args[0])
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			s := newSession(d, NewMetrics(reg))
			if fl.metricsAddr != "" {
				stop := serveMetrics(fl.metricsAddr, reg)
				defer stop()
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return s.watch(ctx, args[0], fl.debounce)
		},
	}
	cmd.Flags().StringVar(&fl.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, such as :9090")
	cmd.Flags().DurationVar(&fl.debounce, "debounce", 100*time.Millisecond, "time to wait for writes to settle")
	return cmd
}

// session applies the changes of a file to its document.
type session struct {
	doc     *document.Document
	metrics *Metrics
	dmp     *diffmatchpatch.DiffMatchPatch

	// relexed is the number of lines re-tokenized by the current change.
	relexed int
}

func newSession(d *document.Document, m *Metrics) *session {
	s := &session{doc: d, metrics: m, dmp: diffmatchpatch.New()}
	d.OnRelex(func(rx syntax.Relex, rebuilt bool) {
		s.relexed += rx.NumLines()
		slog.Debug("relex", "lines", rx.String(), "rebuilt", rebuilt)
		m.observeRelex(rx, rebuilt)
	})
	m.Lines.Set(float64(d.NumLines()))
	m.Folds.Set(float64(d.Folds().Count()))
	return s
}

// apply edits the document to have the given text, as the sequence of
// deletions and insertions in the difference from its current text.
// It returns the number of edits.
func (s *session) apply(text string) (int, error) {
	start := time.Now()
	s.relexed = 0
	diffs := s.dmp.DiffMain(s.doc.Text(), text, false)
	diffs = s.dmp.DiffCleanupSemantic(diffs)
	off, edits := 0, 0
	for _, df := range diffs {
		n := utf8.RuneCountInString(df.Text)
		switch df.Type {
		case diffmatchpatch.DiffEqual:
			off += n
		case diffmatchpatch.DiffDelete:
			if err := s.doc.Delete(off, n); err != nil {
				return edits, err
			}
			edits++
		case diffmatchpatch.DiffInsert:
			if err := s.doc.Insert(off, df.Text); err != nil {
				return edits, err
			}
			off += n
			edits++
		}
	}
	s.metrics.Edits.Add(float64(edits))
	s.metrics.Lines.Set(float64(s.doc.NumLines()))
	s.metrics.Folds.Set(float64(s.doc.Folds().Count()))
	s.metrics.UpdateSeconds.Observe(time.Since(start).Seconds())
	return edits, nil
}

// update reads the file and applies its changes.
func (s *session) update(path string) {
	content, err := fsx.ReadText(path)
	if err != nil {
		slog.Warn("cannot read file", "file", path, "err", err)
		return
	}
	edits, err := s.apply(string(content))
	if err != nil {
		slog.Error("applying changes", "file", path, "err", err)
		return
	}
	if edits == 0 {
		return
	}
	slog.Info("updated", "file", path, "edits", edits, "relexed", s.relexed,
		"lines", s.doc.NumLines(), "folds", s.doc.Folds().Count())
}

// watch applies the changes of the file at path each time it is written,
// once no more writes have happened for the debounce time, until the
// context is done. The directory is watched so that files replaced by
// editors on save are followed.
func (s *session) watch(ctx context.Context, path string, debounce time.Duration) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	slog.Info("watching", "file", path, "language", s.doc.Language().Name)

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			s.update(abs)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher", "err", err)
		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}
}

// serveMetrics serves the metrics of reg at /metrics on addr,
// returning a function that shuts the server down.
func serveMetrics(addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		slog.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server", "err", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		errors.Log(srv.Shutdown(ctx))
	}
}
