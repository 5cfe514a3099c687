// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chromalex provides a TokenMaker for any language supported
// by chroma. Each line is tokenized on its own, so its exit state is
// always the default state: constructs spanning lines, such as block
// comments, are only recognized on their first line.
package chromalex

import (
	"strings"
	"unicode/utf8"

	"cogentcore.org/lexfold/base/errors"
	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// TokenMaker is a stateless TokenMaker based on a chroma lexer.
type TokenMaker struct {
	lexer chroma.Lexer
}

// New returns a TokenMaker for the chroma lexer with the given name
// or alias, and false if there is none.
func New(name string) (*TokenMaker, bool) {
	l := lexers.Get(name)
	if l == nil {
		return nil, false
	}
	return NewFromLexer(l), true
}

// Analyse returns a TokenMaker for the chroma lexer that best matches
// the given content, and false if none does.
func Analyse(content string) (*TokenMaker, bool) {
	l := lexers.Analyse(content)
	if l == nil {
		return nil, false
	}
	return NewFromLexer(l), true
}

// Match returns a TokenMaker for the chroma lexer matching the given
// file name, and false if none does.
func Match(filename string) (*TokenMaker, bool) {
	l := lexers.Match(filename)
	if l == nil {
		return nil, false
	}
	return NewFromLexer(l), true
}

// NewFromLexer returns a TokenMaker for the given chroma lexer.
func NewFromLexer(l chroma.Lexer) *TokenMaker {
	return &TokenMaker{lexer: chroma.Coalesce(l)}
}

// Name returns the name of the chroma lexer.
func (tm *TokenMaker) Name() string {
	return tm.lexer.Config().Name
}

func (tm *TokenMaker) DefaultState() lexer.State { return 0 }

func (tm *TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	if st != 0 {
		lexer.BadState("chroma "+tm.Name(), st)
	}
	var sc lexer.Scanner
	sc.Init(src, out)
	if len(src) == 0 {
		return sc.Out, 0
	}
	it, err := tm.lexer.Tokenise(nil, string(src)+"\n")
	if errors.Log(err) == nil {
		for _, tok := range it.Tokens() {
			if sc.AtEnd() {
				break
			}
			val := strings.TrimSuffix(tok.Value, "\n")
			n := utf8.RuneCountInString(val)
			if n == 0 {
				continue
			}
			if tok.Type.Category() == chroma.Punctuation {
				punctuation(&sc, n)
				continue
			}
			sc.Emit(Convert(tok.Type), sc.Pos+n)
		}
	}
	sc.EmitRest(token.Text)
	return sc.Out, 0
}

// punctuation emits n runes of punctuation one at a time, so that
// each bracket is its own token.
func punctuation(sc *lexer.Scanner, n int) {
	for range n {
		tok := token.Punctuation
		switch ch := sc.Ch(); {
		case strings.ContainsRune("{}()[]", ch):
			tok = token.PunctGroup
		case ch == ',' || ch == ';':
			tok = token.PunctSep
		}
		sc.EmitN(tok, 1)
	}
}

// tokenTypes maps chroma token types to token types.
var tokenTypes = map[chroma.TokenType]token.Tokens{
	chroma.Error:                    token.Error,
	chroma.Keyword:                  token.Keyword,
	chroma.KeywordConstant:          token.KeywordConstant,
	chroma.KeywordType:              token.KeywordType,
	chroma.KeywordReserved:          token.KeywordReserved,
	chroma.Name:                     token.Name,
	chroma.NameBuiltin:              token.NameBuiltin,
	chroma.NameBuiltinPseudo:        token.NameBuiltin,
	chroma.NameFunction:             token.NameFunction,
	chroma.NameFunctionMagic:        token.NameFunction,
	chroma.NameVariable:             token.NameVariable,
	chroma.NameVariableClass:        token.NameVariable,
	chroma.NameVariableGlobal:       token.NameVariable,
	chroma.NameVariableInstance:     token.NameVariable,
	chroma.NameDecorator:            token.NameAnnotation,
	chroma.NameLabel:                token.NameLabel,
	chroma.NameTag:                  token.MarkupTagName,
	chroma.NameAttribute:            token.MarkupAttribute,
	chroma.NameEntity:               token.MarkupEntity,
	chroma.Literal:                  token.Literal,
	chroma.LiteralString:            token.LitStr,
	chroma.LiteralStringDouble:      token.LitStrDouble,
	chroma.LiteralStringSingle:      token.LitStrSingle,
	chroma.LiteralStringChar:        token.LitStrChar,
	chroma.LiteralStringBacktick:    token.LitStrBacktick,
	chroma.LiteralStringHeredoc:     token.LitStrHeredoc,
	chroma.LiteralStringRegex:       token.LitStrRegex,
	chroma.LiteralNumber:            token.LitNum,
	chroma.LiteralNumberInteger:     token.LitNumInteger,
	chroma.LiteralNumberIntegerLong: token.LitNumInteger,
	chroma.LiteralNumberBin:         token.LitNumInteger,
	chroma.LiteralNumberOct:         token.LitNumInteger,
	chroma.LiteralNumberFloat:       token.LitNumFloat,
	chroma.LiteralNumberHex:         token.LitNumHex,
	chroma.Comment:                  token.Comment,
	chroma.CommentSingle:            token.CommentSingle,
	chroma.CommentHashbang:          token.CommentSingle,
	chroma.CommentMultiline:         token.CommentMultiline,
	chroma.CommentSpecial:           token.CommentTodo,
	chroma.CommentPreproc:           token.Preprocessor,
	chroma.CommentPreprocFile:       token.Preprocessor,
	chroma.Operator:                 token.Operator,
	chroma.OperatorWord:             token.Operator,
	chroma.GenericHeading:           token.MarkupHeading,
	chroma.GenericSubheading:        token.MarkupHeading,
	chroma.GenericEmph:              token.MarkupEmphasis,
	chroma.GenericStrong:            token.MarkupEmphasis,
	chroma.GenericError:             token.Error,
	chroma.TextWhitespace:           token.TextWhitespace,
}

// Convert returns the token type for a chroma token type, by its
// closest sub-category or category that has one, and otherwise text.
func Convert(tt chroma.TokenType) token.Tokens {
	for _, t := range []chroma.TokenType{tt, tt.SubCategory(), tt.Category()} {
		if tok, ok := tokenTypes[t]; ok {
			return tok
		}
	}
	return token.Text
}

// NewFoldParser returns the fold parser for chroma languages, which
// folds brace blocks and region comments.
func NewFoldParser() folding.Parser {
	return &folding.CurlyParser{Regions: true}
}
