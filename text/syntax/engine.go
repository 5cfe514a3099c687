// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides the incremental tokenization Engine,
// which keeps the tokens of every line of a text buffer up to date
// as the text is edited, re-tokenizing only the lines whose lexical
// state may have changed.
//
// For every line the Engine caches the lexical state at the start of
// the line. After an edit, lines are re-tokenized in order starting at
// the first edited line, and re-tokenizing stops as soon as a line
// ends in the same state that was cached for the start of the next line:
// all following lines would then produce the same tokens as before.
// The result is always the same as tokenizing the whole text again.
//
// The Engine is single-threaded: OnEdit must run to completion before
// any query, and there is no locking.
package syntax

import (
	"fmt"
	"slices"

	"cogentcore.org/lexfold/base/errors"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// Source is the text buffer that the Engine tokenizes,
// which is satisfied by [lines.Lines].
type Source interface {

	// NumLines returns the number of lines, at least 1.
	NumLines() int

	// Line returns the runes of the given line, without the line break.
	Line(ln int) []rune

	// LineStart returns the document offset of the start of the line.
	LineStart(ln int) int

	// LineOf returns the line containing the given document offset.
	LineOf(off int) int
}

// Relex describes the lines re-tokenized by one update.
type Relex struct {

	// First is the first re-tokenized line.
	First int

	// Last is the last re-tokenized line (inclusive),
	// which is First - 1 if no line was re-tokenized.
	Last int

	// LineDelta is the change in the number of lines.
	LineDelta int

	// Full is true if all lines were re-tokenized from scratch.
	Full bool
}

// NumLines returns the number of re-tokenized lines.
func (rx Relex) NumLines() int {
	return rx.Last - rx.First + 1
}

func (rx Relex) String() string {
	return fmt.Sprintf("relex %d-%d (%+d lines)", rx.First, rx.Last, rx.LineDelta)
}

// Stats has counts of the work done by an Engine.
type Stats struct {

	// Edits is the number of edits processed.
	Edits int

	// LinesRelexed is the total number of lines tokenized by edits.
	LinesRelexed int

	// LastRelexed is the number of lines tokenized by the last edit.
	LastRelexed int

	// FullLexes is the number of times the whole text was tokenized.
	FullLexes int
}

// Engine is the incremental tokenization engine for one text [Source].
type Engine struct {

	// src is the text.
	src Source

	// maker is the current token maker.
	maker lexer.TokenMaker

	// states has the state at the start of each line, plus a final entry
	// with the state at the end of the last line.
	states []lexer.State

	// tags has the tokens of each line.
	tags []lexer.Line

	// stats are the work counts.
	stats Stats
}

// NewEngine returns a new Engine for the given text and token maker,
// with all lines tokenized.
func NewEngine(src Source, tm lexer.TokenMaker) *Engine {
	en := &Engine{src: src, maker: tm}
	en.Relex()
	return en
}

// TokenMaker returns the current token maker.
func (en *Engine) TokenMaker() lexer.TokenMaker {
	return en.maker
}

// SetTokenMaker sets the token maker, for example after a change of
// language, and re-tokenizes all lines.
func (en *Engine) SetTokenMaker(tm lexer.TokenMaker) Relex {
	en.maker = tm
	return en.Relex()
}

// Relex discards all cached states and tokens and tokenizes all lines.
func (en *Engine) Relex() Relex {
	n := en.src.NumLines()
	old := len(en.tags)
	en.tags = slices.Grow(en.tags[:0], n)[:n]
	en.states = slices.Grow(en.states[:0], n+1)[:n+1]
	st := en.maker.DefaultState()
	for ln := range n {
		en.states[ln] = st
		en.tags[ln], st = en.maker.Tokenize(en.src.Line(ln), st, en.tags[ln])
	}
	en.states[n] = st
	en.stats.FullLexes++
	return Relex{First: 0, Last: n - 1, LineDelta: n - old, Full: true}
}

// OnEdit updates the tokens after an edit of the text, which removed
// removedLength runes at startOffset and inserted insertedLength runes
// there. It must be called after every edit, once the Source reflects it.
// Lines are re-tokenized in increasing order starting at the line of
// startOffset, and the returned Relex reports which lines were done.
func (en *Engine) OnEdit(startOffset, removedLength, insertedLength int) Relex {
	n := en.src.NumLines()
	delta := n - len(en.tags)
	if startOffset < 0 || removedLength < 0 || insertedLength < 0 {
		errors.Log(fmt.Errorf("syntax.Engine.OnEdit: invalid edit at %d -%d +%d: re-tokenizing all", startOffset, removedLength, insertedLength))
		return en.Relex()
	}
	first := en.src.LineOf(startOffset)
	changed := en.src.LineOf(startOffset + insertedLength) // last line with new text
	if changed-first < delta || changed-delta >= len(en.tags) {
		errors.Log(fmt.Errorf("syntax.Engine.OnEdit: edit at %d -%d +%d does not match %d line change: re-tokenizing all", startOffset, removedLength, insertedLength, delta))
		return en.Relex()
	}
	en.splice(first, changed, delta)
	rx := en.relexFrom(first, changed)
	rx.LineDelta = delta
	en.stats.Edits++
	en.stats.LastRelexed = rx.NumLines()
	en.stats.LinesRelexed += rx.NumLines()
	return rx
}

// splice adjusts the cached lines for a change of delta lines, where lines
// first through changed (in the new text) replaced lines first through
// changed-delta in the old text. New lines get unknown entering states.
func (en *Engine) splice(first, changed, delta int) {
	switch {
	case delta > 0:
		en.tags = slices.Insert(en.tags, first+1, make([]lexer.Line, delta)...)
		unknown := make([]lexer.State, delta)
		for i := range unknown {
			unknown[i] = lexer.StateUnknown
		}
		en.states = slices.Insert(en.states, first+1, unknown...)
	case delta < 0:
		en.tags = slices.Delete(en.tags, first+1, first+1-delta)
		en.states = slices.Delete(en.states, first+1, first+1-delta)
	}
	for ln := first + 1; ln <= changed; ln++ {
		en.states[ln] = lexer.StateUnknown
	}
}

// relexFrom re-tokenizes lines starting at first, always doing lines up to
// changed, and then continuing until the exit state of a line matches the
// cached entering state of the next line.
func (en *Engine) relexFrom(first, changed int) Relex {
	n := len(en.tags)
	st := en.states[first]
	ln := first
	for ; ln < n; ln++ {
		en.tags[ln], st = en.maker.Tokenize(en.src.Line(ln), st, en.tags[ln])
		if ln >= changed && en.states[ln+1] == st {
			break
		}
		en.states[ln+1] = st
	}
	return Relex{First: first, Last: min(ln, n-1)}
}

// Stats returns the counts of work done.
func (en *Engine) Stats() Stats {
	return en.stats
}

// NumLines returns the number of tokenized lines.
func (en *Engine) NumLines() int {
	return len(en.tags)
}

// DefaultState returns the default state of the token maker.
func (en *Engine) DefaultState() lexer.State {
	return en.maker.DefaultState()
}

// EnterState returns the lexical state at the start of the given line.
func (en *Engine) EnterState(ln int) lexer.State {
	if ln < 0 || ln >= len(en.tags) {
		return lexer.StateUnknown
	}
	return en.states[ln]
}

// ExitState returns the lexical state at the end of the given line.
func (en *Engine) ExitState(ln int) lexer.State {
	if ln < 0 || ln >= len(en.tags) {
		return lexer.StateUnknown
	}
	return en.states[ln+1]
}

// Tokens returns the tokens of the given line. The returned line shares
// the storage of the Engine, and is only valid until the next edit:
// use [lexer.Line.Clone] to keep it.
func (en *Engine) Tokens(ln int) lexer.Line {
	if ln < 0 || ln >= len(en.tags) {
		return nil
	}
	return en.tags[ln]
}

// TokenListForLine returns a [lexer.Cursor] at the first token of the
// given line, which is the null sentinel for an empty or invalid line.
// It is only valid until the next edit.
func (en *Engine) TokenListForLine(ln int) lexer.Cursor {
	if ln < 0 || ln >= len(en.tags) {
		return lexer.Cursor{}
	}
	return lexer.NewCursor(en.tags[ln], en.src.Line(ln), en.src.LineStart(ln))
}

// LastTokenTypeOnLine returns the type of the last token on the given
// line, or [token.None] for an empty or invalid line.
func (en *Engine) LastTokenTypeOnLine(ln int) token.Tokens {
	return en.Tokens(ln).LastToken()
}
