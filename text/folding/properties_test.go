// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var editAlphabet = []string{"{", "}", "(", ")", "/*", "*/", "\n", "\n", "a", " ", "// region", "// endregion"}

func drawText(rt *rapid.T, label string, maxN int) string {
	return strings.Join(rapid.SliceOfN(rapid.SampledFrom(editAlphabet), 0, maxN).Draw(rt, label), "")
}

func propertyParser() Parser {
	return &CurlyParser{Comments: true, Parens: true, Regions: true}
}

// TestUpdateMatchesRebuild checks that folds maintained through edits are
// the same as those built from scratch, and always well formed.
func TestUpdateMatchesRebuild(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		td := newTestDoc(drawText(rt, "init", 40), propertyParser())
		nedits := rapid.IntRange(1, 15).Draw(rt, "nedits")
		for range nedits {
			size := td.ls.Len()
			off := rapid.IntRange(0, size).Draw(rt, "off")
			del := rapid.IntRange(0, size-off).Draw(rt, "del")
			_, err := td.ls.Replace(off, del, drawText(rt, "ins", 4))
			require.NoError(rt, err)
			require.NoError(rt, td.m.Validate())

			fresh := NewManager(td.ls, td.en, propertyParser())
			require.Equal(rt, spans(fresh), spans(td.m), td.ls.String())
			fresh.SetEnabled(false)
		}
	})
}

// TestFoldContainment checks that fold line ranges never partially
// overlap: the lines hidden by two folds are either disjoint or nested.
func TestFoldContainment(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		td := newTestDoc(drawText(rt, "text", 60), propertyParser())
		all := td.m.All()
		for _, a := range all {
			for _, b := range all {
				if a == b {
					continue
				}
				as, ae, bs, be := a.StartLine(), a.EndLine(), b.StartLine(), b.EndLine()
				disjoint := ae <= bs || be <= as
				aInB := as >= bs && ae <= be
				bInA := bs >= as && be <= ae
				require.True(rt, disjoint || aInB || bInA, "%v and %v", a, b)
			}
		}
	})
}

// TestHiddenLineAccounting checks the hidden line queries against
// a direct count over all collapsed folds.
func TestHiddenLineAccounting(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		td := newTestDoc(drawText(rt, "text", 60), propertyParser())
		m := td.m
		for _, f := range m.All() {
			if rapid.Bool().Draw(rt, "collapse") {
				m.SetCollapsed(f, true)
			}
		}
		nl := td.ls.NumLines()
		hidden := func(ln int) bool {
			for _, f := range m.All() {
				if f.Collapsed() && f.HidesLine(ln) {
					return true
				}
			}
			return false
		}
		count := 0
		for ln := range nl {
			require.Equal(rt, hidden(ln), m.IsLineHidden(ln), "line %d", ln)
			require.Equal(rt, count, m.HiddenLineCountAbove(ln), "line %d", ln)
			if hidden(ln) {
				count++
			}
			below := -1
			for nx := ln + 1; nx < nl; nx++ {
				if !hidden(nx) {
					below = nx
					break
				}
			}
			require.Equal(rt, below, m.VisibleLineBelow(ln), "line %d", ln)
			above := -1
			for pv := ln - 1; pv >= 0; pv-- {
				if !hidden(pv) {
					above = pv
					break
				}
			}
			require.Equal(rt, above, m.VisibleLineAbove(ln), "line %d", ln)
		}
		require.Equal(rt, count, m.HiddenLineCount())
	})
}
