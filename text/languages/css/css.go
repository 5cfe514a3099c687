// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package css provides the TokenMaker and fold parser for CSS.
// Lines are lexed with the tdewolff CSS lexer, with a state of its
// own for comments that span lines.
package css

import (
	"strings"
	"unicode/utf8"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// The lexical states.
const (
	stDefault lexer.State = iota

	// stComment is inside a comment.
	stComment
)

// TokenMaker is the TokenMaker for CSS.
type TokenMaker struct{}

// New returns a new CSS TokenMaker.
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
		end := sc.Index(0, "*/")
		if end < 0 {
			sc.EmitRest(token.CommentMultiline)
			return sc.Out, stComment
		}
		sc.Emit(token.CommentMultiline, end+2)
	default:
		lexer.BadState("CSS", st)
	}
	return sc.Out, lex(&sc)
}

// lex tokenizes the rest of the line with the CSS lexer.
func lex(sc *lexer.Scanner) lexer.State {
	if sc.AtEnd() {
		return stDefault
	}
	l := css.NewLexer(parse.NewInputString(string(sc.Src[sc.Pos:])))
	for !sc.AtEnd() {
		tt, text := l.Next()
		n := utf8.RuneCount(text)
		if tt == css.ErrorToken || n == 0 {
			sc.EmitRest(token.Error)
			break
		}
		end := sc.Pos + n
		switch tt {
		case css.CommentToken:
			sc.Emit(token.CommentMultiline, end)
			if n < 4 || !strings.HasSuffix(string(text), "*/") {
				return stComment
			}
		case css.FunctionToken:
			sc.Emit(token.NameFunction, end-1)
			sc.Emit(token.PunctGroup, end)
		case css.StringToken:
			q := text[0]
			tok := token.LitStrDouble
			if q == '\'' {
				tok = token.LitStrSingle
			}
			if !closed(text, q) {
				tok = token.ErrorString
			}
			sc.Emit(tok, end)
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			tok := token.LitNumInteger
			if strings.ContainsRune(string(text), '.') {
				tok = token.LitNumFloat
			}
			sc.Emit(tok, end)
		case css.HashToken:
			sc.Emit(hashToken(string(text[1:])), end)
		case css.IdentToken:
			tok := token.Name
			if strings.HasPrefix(string(text), "--") {
				tok = token.NameVariable
			}
			sc.Emit(tok, end)
		default:
			tok, ok := tokenTypes[tt]
			if !ok {
				tok = token.Error
			}
			sc.Emit(tok, end)
		}
	}
	return stDefault
}

// closed returns whether the string ends with an unescaped closing quote.
func closed(text []byte, q byte) bool {
	n := len(text)
	if n < 2 || text[n-1] != q {
		return false
	}
	bs := 0
	for i := n - 2; i > 0 && text[i] == '\\'; i-- {
		bs++
	}
	return bs%2 == 0
}

// hashToken returns the token for a hash: a hex color or an id.
func hashToken(name string) token.Tokens {
	switch len(name) {
	case 3, 4, 6, 8:
		for _, r := range name {
			if !lexer.IsHexDigit(r) {
				return token.Name
			}
		}
		return token.LitNumHex
	}
	return token.Name
}

// tokenTypes maps the remaining CSS token types to token types.
// Anything missing is an error.
var tokenTypes = map[css.TokenType]token.Tokens{
	css.WhitespaceToken:          token.TextWhitespace,
	css.AtKeywordToken:           token.Keyword,
	css.BadStringToken:           token.ErrorString,
	css.URLToken:                 token.LitStr,
	css.BadURLToken:              token.ErrorString,
	css.UnicodeRangeToken:        token.LitNumHex,
	css.DelimToken:               token.Operator,
	css.IncludeMatchToken:        token.Operator,
	css.DashMatchToken:           token.Operator,
	css.PrefixMatchToken:         token.Operator,
	css.SuffixMatchToken:         token.Operator,
	css.SubstringMatchToken:      token.Operator,
	css.ColumnToken:              token.Operator,
	css.ColonToken:               token.Operator,
	css.SemicolonToken:           token.PunctSep,
	css.CommaToken:               token.PunctSep,
	css.LeftBracketToken:         token.PunctGroup,
	css.RightBracketToken:        token.PunctGroup,
	css.LeftParenthesisToken:     token.PunctGroup,
	css.RightParenthesisToken:    token.PunctGroup,
	css.LeftBraceToken:           token.PunctGroup,
	css.RightBraceToken:          token.PunctGroup,
	css.CDOToken:                 token.CommentMarkup,
	css.CDCToken:                 token.CommentMarkup,
	css.CustomPropertyNameToken:  token.NameVariable,
	css.CustomPropertyValueToken: token.Text,
}

// NewFoldParser returns the fold parser for CSS, which folds rule
// blocks and comments.
func NewFoldParser() folding.Parser {
	return &folding.CurlyParser{Comments: true}
}
