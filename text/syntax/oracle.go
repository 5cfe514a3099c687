// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "cogentcore.org/lexfold/text/lexer"

// FullRelex tokenizes all lines of the given source from scratch, with no
// caching, returning the tokens of each line and the states, which have one
// entry per line for the entering state plus a final exit state. It is the
// reference result that the incremental [Engine] must always match.
func FullRelex(src Source, tm lexer.TokenMaker) ([]lexer.Line, []lexer.State) {
	n := src.NumLines()
	tags := make([]lexer.Line, n)
	states := make([]lexer.State, n+1)
	st := tm.DefaultState()
	for ln := range n {
		states[ln] = st
		tags[ln], st = tm.Tokenize(src.Line(ln), st, nil)
	}
	states[n] = st
	return tags, states
}

// Snapshot returns a copy of the current tokens and states of the Engine,
// in the same form as [FullRelex].
func (en *Engine) Snapshot() ([]lexer.Line, []lexer.State) {
	tags := make([]lexer.Line, len(en.tags))
	for i, t := range en.tags {
		tags[i] = t.Clone()
	}
	states := make([]lexer.State, len(en.states))
	copy(states, en.states)
	return tags, states
}
