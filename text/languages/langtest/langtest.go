// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langtest provides test helpers shared by the language
// packages: tokenizing a document and checking the laws that every
// TokenMaker must obey.
package langtest

import (
	"strings"
	"testing"

	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/syntax"
	"cogentcore.org/lexfold/text/textpos"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Tags tokenizes the given lines in order from the default state,
// checking that every line is exactly covered by its tokens and that
// tokenizing again gives the same result. It returns the
// [lexer.Line.TagSrc] of each line, and the exit state of each line.
func Tags(t require.TestingT, tm lexer.TokenMaker, lns ...string) ([]string, []lexer.State) {
	tags := make([]string, len(lns))
	exits := make([]lexer.State, len(lns))
	st := tm.DefaultState()
	for i, ln := range lns {
		src := []rune(ln)
		toks, ex := tm.Tokenize(src, st, nil)
		require.NoError(t, toks.Validate(len(src)), "line %d: %q", i, ln)
		again, ex2 := tm.Tokenize(src, st, nil)
		require.Equal(t, toks, again, "line %d: %q", i, ln)
		require.Equal(t, ex, ex2, "line %d: %q", i, ln)
		tags[i] = toks.TagSrc(src)
		exits[i] = ex
		st = ex
	}
	return tags, exits
}

// Tag returns the [lexer.Line.TagSrc] of the single line in the
// default state.
func Tag(t require.TestingT, tm lexer.TokenMaker, ln string) string {
	tags, _ := Tags(t, tm, ln)
	return tags[0]
}

// Properties checks the TokenMaker laws on random documents made from
// the given fragments: every line round trips, tokenizing is
// deterministic, and incremental tokenizing through any sequence of
// edits matches tokenizing from scratch.
func Properties(t *testing.T, tm lexer.TokenMaker, fragments []string) {
	frag := rapid.SampledFrom(fragments)
	text := func(rt *rapid.T, label string, n int) string {
		return strings.Join(rapid.SliceOfN(frag, 0, n).Draw(rt, label), "")
	}
	rapid.Check(t, func(rt *rapid.T) {
		ls := lines.New(text(rt, "init", 30))
		en := syntax.NewEngine(ls, tm)
		ls.OnEdit(func(ed *textpos.Edit) {
			en.OnEdit(ed.Offset, ed.Removed, ed.Inserted)
		})
		Tags(rt, tm, ls.Strings()...)
		nedits := rapid.IntRange(1, 10).Draw(rt, "nedits")
		for range nedits {
			size := ls.Len()
			off := rapid.IntRange(0, size).Draw(rt, "off")
			del := rapid.IntRange(0, size-off).Draw(rt, "del")
			_, err := ls.Replace(off, del, text(rt, "ins", 3))
			require.NoError(rt, err)

			tags, states := en.Snapshot()
			ftags, fstates := syntax.FullRelex(ls, tm)
			require.Equal(rt, fstates, states, ls.String())
			for ln := range ftags {
				require.Equal(rt, ftags[ln].Clone(), tags[ln], "line %d of %q", ln, ls.String())
				require.NoError(rt, tags[ln].Validate(ls.LineLen(ln)))
			}
		}
	})
}
