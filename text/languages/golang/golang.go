// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package golang provides the TokenMaker and fold parser for Go.
package golang

import (
	"strings"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// The lexical states.
const (
	stDefault lexer.State = iota

	// stComment is inside a block comment.
	stComment

	// stRaw is inside a raw string literal.
	stRaw
)

var words = map[string]token.Tokens{}

func init() {
	for _, w := range strings.Fields(`break case chan const continue default defer else fallthrough
		for func go goto if import interface map package range return select struct switch type var`) {
		words[w] = token.Keyword
	}
	for _, w := range strings.Fields(`any bool byte comparable complex64 complex128 error float32 float64
		int int8 int16 int32 int64 rune string uint uint8 uint16 uint32 uint64 uintptr`) {
		words[w] = token.KeywordType
	}
	for _, w := range strings.Fields(`true false iota nil`) {
		words[w] = token.KeywordConstant
	}
	for _, w := range strings.Fields(`append cap clear close complex copy delete imag len make max min
		new panic print println real recover`) {
		words[w] = token.NameBuiltin
	}
}

// TokenMaker is the TokenMaker for Go.
type TokenMaker struct{}

// New returns a new Go TokenMaker.
func New() lexer.TokenMaker {
	return TokenMaker{}
}

func (TokenMaker) DefaultState() lexer.State { return stDefault }

func (TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	var sc lexer.Scanner
	sc.Init(src, out)
	switch st {
	case stDefault:
	case stComment:
		st = comment(&sc, 0)
	case stRaw:
		st = raw(&sc, 0)
	default:
		lexer.BadState("Go", st)
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
	case sc.HasPrefix("//"):
		sc.EmitRest(token.CommentSingle)
	case sc.HasPrefix("/*"):
		return comment(sc, sc.Pos+2)
	case ch == '`':
		return raw(sc, sc.Pos+1)
	case ch == '"':
		end, ok := sc.QuotedEnd(sc.Pos+1, `"`, true)
		if ok {
			sc.Emit(token.LitStrDouble, end)
		} else {
			sc.Emit(token.ErrorString, end)
		}
	case ch == '\'':
		end, ok := sc.QuotedEnd(sc.Pos+1, "'", true)
		if ok {
			sc.Emit(token.LitStrChar, end)
		} else {
			sc.Emit(token.ErrorChar, end)
		}
	case lexer.IsDigit(ch) || (ch == '.' && lexer.IsDigit(sc.Peek(1))):
		tok, end := sc.NumberEnd(sc.Pos)
		sc.Emit(tok, end)
	case lexer.IsLetter(ch):
		end := sc.NameEnd(sc.Pos, "")
		tok, ok := words[sc.Word(sc.Pos, end)]
		if !ok {
			tok = token.Name
			if sc.At(end) == '(' {
				tok = token.NameFunction
			}
		}
		sc.Emit(tok, end)
	case strings.ContainsRune("{}()[]", ch):
		sc.EmitN(token.PunctGroup, 1)
	case ch == ';' || ch == ',':
		sc.EmitN(token.PunctSep, 1)
	case strings.ContainsRune("+-*/%=<>!&|^~:.", ch):
		end := sc.Pos + 1
		for end < len(sc.Src) && strings.ContainsRune("+-*/%=<>!&|^~:.", sc.Src[end]) &&
			!sc.HasPrefixAt(end, "//") && !sc.HasPrefixAt(end, "/*") {
			end++
		}
		sc.Emit(token.Operator, end)
	default:
		sc.EmitN(token.Error, 1)
	}
	return stDefault
}

func comment(sc *lexer.Scanner, pos int) lexer.State {
	end := sc.Index(pos, "*/")
	if end < 0 {
		sc.EmitRest(token.CommentMultiline)
		return stComment
	}
	sc.Emit(token.CommentMultiline, end+2)
	return stDefault
}

func raw(sc *lexer.Scanner, pos int) lexer.State {
	end := sc.Index(pos, "`")
	if end < 0 {
		sc.EmitRest(token.LitStrBacktick)
		return stRaw
	}
	sc.Emit(token.LitStrBacktick, end+1)
	return stDefault
}

// NewFoldParser returns the fold parser for Go, which folds blocks,
// comments, grouped declarations and raw strings.
func NewFoldParser() folding.Parser {
	return folding.ChainParser{
		&folding.CurlyParser{
			Comments: true,
			Regions:  true,
			ParenKeywords: map[string]folding.FoldTypes{
				"import": folding.FoldImports,
				"const":  folding.FoldCode,
				"var":    folding.FoldCode,
				"type":   folding.FoldCode,
			},
		},
		&folding.MultilineParser{
			Match: func(tk token.Tokens) bool { return tk == token.LitStrBacktick },
			Type:  folding.FoldCode,
		},
	}
}
