// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"strings"
	"testing"

	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/textpos"
	"cogentcore.org/lexfold/text/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	stDefault lexer.State = iota
	stComment
)

// commentMaker is a small TokenMaker with block comments spanning lines.
type commentMaker struct{}

func (commentMaker) DefaultState() lexer.State { return stDefault }

func (commentMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	var sc lexer.Scanner
	sc.Init(src, out)
	if st != stDefault && st != stComment {
		lexer.BadState("comment", st)
	}
	for !sc.AtEnd() {
		if st == stComment {
			end := sc.Index(sc.Pos, "*/")
			if end < 0 {
				sc.EmitRest(token.CommentMultiline)
				break
			}
			sc.Emit(token.CommentMultiline, end+2)
			st = stDefault
			continue
		}
		switch {
		case sc.EmitSpace():
		case sc.HasPrefix("/*"):
			st = stComment
			sc.EmitN(token.CommentMultiline, 2)
		case lexer.IsLetter(sc.Ch()):
			sc.Emit(token.Name, sc.NameEnd(sc.Pos, ""))
		default:
			sc.EmitN(token.Operator, 1)
		}
	}
	return sc.Out, st
}

// newTestEngine returns an engine wired to the edits of a new Lines.
func newTestEngine(text string) (*lines.Lines, *Engine, *[]Relex) {
	ls := lines.New(text)
	en := NewEngine(ls, commentMaker{})
	var relexes []Relex
	ls.OnEdit(func(ed *textpos.Edit) {
		relexes = append(relexes, en.OnEdit(ed.Offset, ed.Removed, ed.Inserted))
	})
	return ls, en, &relexes
}

// assertMatchesFull checks the engine against a full re-tokenization.
func assertMatchesFull(t require.TestingT, ls *lines.Lines, en *Engine) {
	tags, states := en.Snapshot()
	ftags, fstates := FullRelex(ls, commentMaker{})
	require.Equal(t, fstates, states)
	require.Equal(t, len(ftags), len(tags))
	for ln := range ftags {
		require.Equal(t, ftags[ln].Clone(), tags[ln], "line %d", ln)
	}
}

func TestRoundTrip(t *testing.T) {
	ls, en, _ := newTestEngine("a /* b\nc */ d\n\n  e+f")
	for ln := range ls.NumLines() {
		var sb strings.Builder
		for c := en.TokenListForLine(ln); c.Valid(); c = c.Next() {
			sb.WriteString(c.Lexeme())
		}
		assert.Equal(t, ls.LineString(ln), sb.String(), "line %d", ln)
		assert.NoError(t, en.Tokens(ln).Validate(ls.LineLen(ln)))
	}
	assert.Equal(t, token.None, en.LastTokenTypeOnLine(2))
	assert.Equal(t, token.CommentMultiline, en.LastTokenTypeOnLine(0))
	assert.Equal(t, token.Name, en.LastTokenTypeOnLine(3))
	assert.Equal(t, stComment, en.ExitState(0))
	assert.Equal(t, stComment, en.EnterState(1))
	assert.Equal(t, lexer.StateUnknown, en.EnterState(10))
}

func TestTokenOffsets(t *testing.T) {
	ls, en, _ := newTestEngine("ab\ncd ef")
	c := en.TokenListForLine(1).Next().Next()
	assert.Equal(t, "ef", c.Lexeme())
	assert.Equal(t, 6, c.Offset())
	_, err := ls.Insert(0, "xyz")
	require.NoError(t, err)
	c = en.TokenListForLine(1).Next().Next()
	assert.Equal(t, 9, c.Offset())
	assert.False(t, en.TokenListForLine(5).Valid())
}

func TestSingleLineEdit(t *testing.T) {
	ls, en, relexes := newTestEngine("one\ntwo\nthree\nfour")
	_, err := ls.Insert(5, "x")
	require.NoError(t, err)
	require.Len(t, *relexes, 1)
	assert.Equal(t, Relex{First: 1, Last: 1}, (*relexes)[0])
	assert.Equal(t, 1, en.Stats().LastRelexed)
	assertMatchesFull(t, ls, en)
}

func TestOpenCommentRelexesToCloser(t *testing.T) {
	ls, en, relexes := newTestEngine("alpha\nbeta\ngamma */ x\ndelta\nepsilon")
	_, err := ls.Insert(ls.LineStart(1), "/*")
	require.NoError(t, err)
	rx := (*relexes)[0]
	assert.Equal(t, 1, rx.First)
	assert.Equal(t, 2, rx.Last)
	assert.Equal(t, stComment, en.ExitState(1))
	assert.Equal(t, stDefault, en.ExitState(2))
	assertMatchesFull(t, ls, en)

	// with no closer the re-tokenizing runs to the end
	_, err = ls.Delete(ls.LineStart(2)+6, 2)
	require.NoError(t, err)
	rx = (*relexes)[1]
	assert.Equal(t, 2, rx.First)
	assert.Equal(t, 4, rx.Last)
	assertMatchesFull(t, ls, en)
}

func TestMultiLineEdits(t *testing.T) {
	ls, en, relexes := newTestEngine("a\nb\nc\nd")
	_, err := ls.Insert(2, "x\n/*y\nz")
	require.NoError(t, err)
	rx := (*relexes)[0]
	assert.Equal(t, 2, rx.LineDelta)
	assert.Equal(t, 1, rx.First)
	assert.Equal(t, 5, rx.Last)
	assertMatchesFull(t, ls, en)

	_, err = ls.Delete(0, ls.LineStart(3))
	require.NoError(t, err)
	assert.Equal(t, -3, (*relexes)[1].LineDelta)
	assertMatchesFull(t, ls, en)

	ls.SetString("")
	assertMatchesFull(t, ls, en)
	assert.Equal(t, 1, en.NumLines())
}

func TestSetTokenMaker(t *testing.T) {
	ls, en, _ := newTestEngine("/*\n*/")
	rx := en.SetTokenMaker(commentMaker{})
	assert.True(t, rx.Full)
	assert.Equal(t, 2, rx.NumLines())
	assert.Equal(t, 2, en.Stats().FullLexes)
	assertMatchesFull(t, ls, en)
}

func TestBadEditRelexesAll(t *testing.T) {
	ls, en, _ := newTestEngine("a\nb")
	rx := en.OnEdit(-1, 0, 0)
	assert.True(t, rx.Full)
	assertMatchesFull(t, ls, en)
}

// TestIncrementalMatchesFull checks that any sequence of edits gives the
// same tokens and states as tokenizing from scratch.
func TestIncrementalMatchesFull(t *testing.T) {
	alphabet := []string{"a", "b", " ", "\n", "/*", "*/", "/", "*", "+", "\n\n"}
	rapid.Check(t, func(rt *rapid.T) {
		init := strings.Join(rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 30).Draw(rt, "init"), "")
		ls, en, _ := newTestEngine(init)
		nedits := rapid.IntRange(1, 20).Draw(rt, "nedits")
		for range nedits {
			size := ls.Len()
			off := rapid.IntRange(0, size).Draw(rt, "off")
			del := rapid.IntRange(0, size-off).Draw(rt, "del")
			ins := strings.Join(rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 4).Draw(rt, "ins"), "")
			_, err := ls.Replace(off, del, ins)
			require.NoError(rt, err)
			assertMatchesFull(rt, ls, en)
		}
	})
}

// TestDeterminism checks that tokenizing the same input twice gives the
// same result.
func TestDeterminism(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := []rune(rapid.StringMatching(`[a-c /*+]{0,20}`).Draw(rt, "src"))
		st := rapid.SampledFrom([]lexer.State{stDefault, stComment}).Draw(rt, "state")
		t1, s1 := commentMaker{}.Tokenize(src, st, nil)
		t2, s2 := commentMaker{}.Tokenize(src, st, nil)
		require.Equal(rt, s1, s2)
		require.Equal(rt, t1, t2)
		require.NoError(rt, t1.Validate(len(src)))
	})
}
