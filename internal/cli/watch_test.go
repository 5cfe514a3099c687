// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"cogentcore.org/lexfold/text/document"
	"cogentcore.org/lexfold/text/languages"
	"cogentcore.org/lexfold/text/syntax"
)

func newGoSession(text string) *session {
	var st document.Settings
	st.Defaults()
	st.Language = "Go"
	d := document.New(languages.Default(), st)
	d.SetText(text)
	return newSession(d, NewMetrics(prometheus.NewRegistry()))
}

func TestSessionApply(t *testing.T) {
	s := newGoSession(goSource)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Folds))

	next := strings.Replace(goSource, `println("hi")`, "/* x\n\ty */", 1)
	edits, err := s.apply(next)
	require.NoError(t, err)
	assert.Positive(t, edits)
	assert.Equal(t, next, s.doc.Text())
	assert.Equal(t, float64(edits), testutil.ToFloat64(s.metrics.Edits))
	assert.Equal(t, float64(s.doc.NumLines()), testutil.ToFloat64(s.metrics.Lines))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.Folds))
	assert.Positive(t, s.relexed)

	edits, err = s.apply(next)
	require.NoError(t, err)
	assert.Zero(t, edits)
}

// TestSessionApplyRandom checks that applying the difference between
// random texts gives the new text, with the same tokens as tokenizing
// it from scratch.
func TestSessionApplyRandom(t *testing.T) {
	frags := []string{"{", "}", "/*", "*/", "\"", "\n", "\n", "x", " ", "é", "//", "`"}
	draw := func(rt *rapid.T, label string) string {
		return strings.Join(rapid.SliceOfN(rapid.SampledFrom(frags), 0, 30).Draw(rt, label), "")
	}
	rapid.Check(t, func(rt *rapid.T) {
		s := newGoSession(draw(rt, "old"))
		for range rapid.IntRange(1, 4).Draw(rt, "n") {
			text := draw(rt, "new")
			_, err := s.apply(text)
			require.NoError(rt, err)
			require.Equal(rt, text, s.doc.Text())
			tags, states := s.doc.Engine().Snapshot()
			ftags, fstates := syntax.FullRelex(s.doc.Lines(), s.doc.Engine().TokenMaker())
			require.Equal(rt, fstates, states)
			for ln := range ftags {
				require.Equal(rt, ftags[ln].Clone(), tags[ln])
			}
		}
	})
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "main.go", goSource)
	s := newGoSession(goSource)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.watch(ctx, path, 10*time.Millisecond)
	}()

	next := goSource + "\nfunc f() {\n}\n"
	require.Eventually(t, func() bool {
		// Rewrite until the watcher has started and seen a change.
		if err := os.WriteFile(path, []byte(next), 0o644); err != nil {
			return false
		}
		return testutil.ToFloat64(s.metrics.Folds) == 2 &&
			testutil.ToFloat64(s.metrics.Lines) == float64(strings.Count(next, "\n")+1)
	}, 5*time.Second, 50*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, next, s.doc.Text())
	assert.Equal(t, 2, s.doc.Folds().Count())
}
