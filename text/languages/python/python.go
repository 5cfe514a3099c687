// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package python provides the TokenMaker and fold parser for Python.
package python

import (
	"strings"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// The lexical states.
const (
	stDefault lexer.State = iota

	// stTripleDouble is inside a """ string.
	stTripleDouble

	// stTripleSingle is inside a ''' string.
	stTripleSingle

	// stDouble is inside a " string continued by a backslash.
	stDouble

	// stSingle is inside a ' string continued by a backslash.
	stSingle
)

var words = map[string]token.Tokens{}

func init() {
	for _, w := range strings.Fields(`and as assert async await break class continue def del elif else
		except finally for from global if import in is lambda nonlocal not or pass raise return try
		while with yield match case`) {
		words[w] = token.Keyword
	}
	for _, w := range strings.Fields(`True False None`) {
		words[w] = token.KeywordConstant
	}
	for _, w := range strings.Fields(`abs all any bool bytes dict dir enumerate filter float format
		getattr hasattr int isinstance iter len list map max min next object open print range repr
		reversed set setattr sorted str sum super tuple type zip self cls`) {
		words[w] = token.NameBuiltin
	}
}

// TokenMaker is the TokenMaker for Python.
type TokenMaker struct{}

// New returns a new Python TokenMaker.
func New() lexer.TokenMaker {
	return TokenMaker{}
}

func (TokenMaker) DefaultState() lexer.State { return stDefault }

func (TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	var sc lexer.Scanner
	sc.Init(src, out)
	switch st {
	case stDefault:
	case stTripleDouble, stTripleSingle, stDouble, stSingle:
		st = str(&sc, 0, st)
	default:
		lexer.BadState("Python", st)
	}
	for st == stDefault && !sc.AtEnd() {
		st = next(&sc)
	}
	return sc.Out, st
}

func next(sc *lexer.Scanner) lexer.State {
	ch := sc.Ch()
	switch {
	case sc.EmitSpace():
	case ch == '#':
		sc.EmitRest(token.CommentSingle)
	case ch == '"' || ch == '\'':
		return quote(sc, sc.Pos)
	case lexer.IsDigit(ch) || (ch == '.' && lexer.IsDigit(sc.Peek(1))):
		number(sc)
	case lexer.IsLetter(ch):
		end := sc.NameEnd(sc.Pos, "")
		if q := sc.At(end); (q == '"' || q == '\'') && isPrefix(sc.Word(sc.Pos, end)) {
			return quote(sc, end)
		}
		tok, ok := words[sc.Word(sc.Pos, end)]
		if !ok {
			tok = token.Name
			if sc.At(end) == '(' {
				tok = token.NameFunction
			}
		}
		sc.Emit(tok, end)
	case ch == '@' && lexer.IsLetter(sc.Peek(1)) && sc.SpaceEnd(0) == sc.Pos:
		sc.Emit(token.NameAnnotation, sc.NameEnd(sc.Pos+1, "."))
	case strings.ContainsRune("{}()[]", ch):
		sc.EmitN(token.PunctGroup, 1)
	case ch == ',' || ch == ';':
		sc.EmitN(token.PunctSep, 1)
	case strings.ContainsRune("+-*/%=<>!&|^~:.@", ch):
		end := sc.Pos + 1
		for end < len(sc.Src) && strings.ContainsRune("+-*/%=<>!&|^~:@", sc.Src[end]) {
			end++
		}
		sc.Emit(token.Operator, end)
	case ch == '\\' && sc.Pos == len(sc.Src)-1:
		sc.EmitN(token.Operator, 1)
	default:
		sc.EmitN(token.Error, 1)
	}
	return stDefault
}

// isPrefix returns whether the word is a string prefix such as rb or f.
func isPrefix(w string) bool {
	if len(w) > 2 {
		return false
	}
	return strings.Trim(strings.ToLower(w), "rbuf") == ""
}

// quote tokenizes a string with any prefix from the current position,
// where q is the position of the opening quote.
func quote(sc *lexer.Scanner, q int) lexer.State {
	open := stDouble
	if sc.At(q) == '\'' {
		open = stSingle
	}
	switch {
	case sc.HasPrefixAt(q, `"""`):
		return str(sc, q+3, stTripleDouble)
	case sc.HasPrefixAt(q, `'''`):
		return str(sc, q+3, stTripleSingle)
	}
	return str(sc, q+1, open)
}

// str tokenizes string contents from pos in the given string state,
// returning the state at the end of the string or line.
func str(sc *lexer.Scanner, pos int, st lexer.State) lexer.State {
	var q string
	tok := token.LitStrDouble
	switch st {
	case stTripleDouble:
		q = `"""`
	case stTripleSingle:
		q, tok = `'''`, token.LitStrSingle
	case stDouble:
		q = `"`
	case stSingle:
		q, tok = `'`, token.LitStrSingle
	}
	end, ok := sc.QuotedEnd(pos, q, true)
	switch {
	case ok:
		sc.Emit(tok, end)
		return stDefault
	case st == stTripleDouble || st == stTripleSingle || sc.EndsWithEscape():
		sc.Emit(tok, end)
		return st
	}
	sc.Emit(token.ErrorString, end)
	return stDefault
}

// number tokenizes a number, including imaginary numbers.
func number(sc *lexer.Scanner) {
	tok, end := sc.NumberEnd(sc.Pos)
	if tok == token.ErrorNumber {
		if j := sc.At(end - 1); j == 'j' || j == 'J' {
			var sub lexer.Scanner
			sub.Init(sc.Src[:end-1], nil)
			if t2, e2 := sub.NumberEnd(sc.Pos); e2 == end-1 && t2 != token.ErrorNumber {
				tok = token.LitNumFloat
			}
		}
	}
	sc.Emit(tok, end)
}

// NewFoldParser returns the fold parser for Python, which folds
// bracketed expressions spanning lines and multi-line strings.
func NewFoldParser() folding.Parser {
	return folding.ChainParser{
		&folding.CurlyParser{Parens: true, Brackets: true},
		&folding.MultilineParser{Match: token.Tokens.IsString, Type: folding.FoldCode},
	}
}
