// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plain provides the TokenMaker for plain text,
// which only separates words from whitespace.
package plain

import (
	"unicode"

	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// TokenMaker tokenizes plain text. It has a single state.
type TokenMaker struct{}

// New returns a new plain text TokenMaker.
func New() lexer.TokenMaker {
	return TokenMaker{}
}

func (TokenMaker) DefaultState() lexer.State { return 0 }

func (TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	if st != 0 {
		lexer.BadState("plain", st)
	}
	var sc lexer.Scanner
	sc.Init(src, out)
	for !sc.AtEnd() {
		if sc.EmitSpace() {
			continue
		}
		end := sc.Pos
		for end < len(src) && !unicode.IsSpace(src[end]) {
			end++
		}
		sc.Emit(token.Text, end)
	}
	return sc.Out, 0
}
