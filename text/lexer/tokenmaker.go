// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "fmt"

// State is the lexical state between lines: which multi-line construct,
// if any, is open at the start of a line. Values are specific to each
// [TokenMaker], and are opaque to everything else.
type State int32

// StateUnknown is never produced by a [TokenMaker]. It marks a cached
// state that is not yet known, so that it never compares equal to a
// real state.
const StateUnknown State = -1

// TokenMaker is a lexical state machine for one language.
// Tokenize consumes one line of text and the lexical state at its start,
// appends the tokens of the line to out[:0], and returns them with the
// state at the end of the line.
//
// The tokens must exactly cover src, and the result must depend only on
// src and st, which is what makes incremental re-tokenization sound.
// Unrecognized input is tokenized as an error token type rather than
// reported as an error, and unterminated multi-line constructs produce
// a token to the end of the line and a state that keeps them open.
// Tokenize panics, via [BadState], when called with a state that it
// never produced, which is a programming error.
type TokenMaker interface {

	// DefaultState returns the state at the start of a document.
	DefaultState() State

	// Tokenize tokenizes one line, without its line break.
	Tokenize(src []rune, st State, out Line) (Line, State)
}

// BadState panics for a state that the named TokenMaker never produced.
func BadState(lang string, st State) {
	panic(fmt.Sprintf("lexer: %s TokenMaker called with unknown state %d", lang, st))
}

// Tokenize is a convenience function that tokenizes the given
// string lines in order from the default state, returning the tokens
// and the entering state of each line.
func Tokenize(tm TokenMaker, lines ...string) ([]Line, []State) {
	toks := make([]Line, len(lines))
	states := make([]State, len(lines))
	st := tm.DefaultState()
	for i, ln := range lines {
		states[i] = st
		toks[i], st = tm.Tokenize([]rune(ln), st, nil)
	}
	return toks, states
}
