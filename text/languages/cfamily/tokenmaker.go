// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfamily

import (
	"strings"

	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// The lexical states.
const (
	stDefault lexer.State = iota

	// stComment is inside a block comment.
	stComment

	// stDoc is inside a documentation comment.
	stDoc

	// stString is inside a double quoted string continued by
	// a backslash at the end of the previous line.
	stString

	// stSingle is inside a single quoted string continued by a backslash.
	stSingle

	// stTemplate is inside a template literal.
	stTemplate

	// stPreproc is inside a preprocessor directive continued by
	// a backslash.
	stPreproc
)

const operatorRunes = "+-*/%=<>!&|^~?:."

// TokenMaker is the TokenMaker for one C family language.
type TokenMaker struct {
	spec *Spec

	// words maps the reserved and builtin words to their token types.
	words map[string]token.Tokens
}

// New returns a new TokenMaker for the given language.
func New(spec *Spec) *TokenMaker {
	tm := &TokenMaker{spec: spec, words: map[string]token.Tokens{}}
	add := func(words []string, tok token.Tokens) {
		for _, w := range words {
			tm.words[w] = tok
		}
	}
	add(spec.Builtins, token.NameBuiltin)
	add(spec.Types, token.KeywordType)
	add(spec.Keywords, token.Keyword)
	add(spec.Constants, token.KeywordConstant)
	return tm
}

// Spec returns the language spec.
func (tm *TokenMaker) Spec() *Spec {
	return tm.spec
}

func (tm *TokenMaker) DefaultState() lexer.State { return stDefault }

func (tm *TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	var sc lexer.Scanner
	sc.Init(src, out)
	switch st {
	case stDefault:
	case stComment:
		st = blockComment(&sc, 0, token.CommentMultiline, st)
	case stDoc:
		st = blockComment(&sc, 0, token.CommentDoc, st)
	case stString:
		st = quoted(&sc, 0, "\"", token.LitStrDouble, stString)
	case stSingle:
		st = quoted(&sc, 0, "'", token.LitStrSingle, stSingle)
	case stTemplate:
		st = template(&sc, 0)
	case stPreproc:
		st = tm.preproc(&sc)
	default:
		lexer.BadState(tm.spec.Name, st)
	}
	for st == stDefault && !sc.AtEnd() {
		st = tm.next(&sc)
	}
	return sc.Out, st
}

// next tokenizes the next element in the default state,
// returning the state after it.
func (tm *TokenMaker) next(sc *lexer.Scanner) lexer.State {
	spec := tm.spec
	ch := sc.Ch()
	switch {
	case sc.EmitSpace():
	case spec.LineComments && sc.HasPrefix("//"):
		sc.EmitRest(token.CommentSingle)
	case spec.DocComments && sc.HasPrefix("/**") && !sc.HasPrefix("/**/"):
		return blockComment(sc, sc.Pos+3, token.CommentDoc, stDoc)
	case spec.BlockComments && sc.HasPrefix("/*"):
		return blockComment(sc, sc.Pos+2, token.CommentMultiline, stComment)
	case spec.Preprocessor && ch == '#' && sc.SpaceEnd(0) == sc.Pos:
		return tm.preproc(sc)
	case ch == '"':
		return quoted(sc, sc.Pos+1, "\"", token.LitStrDouble, stString)
	case ch == '\'' && spec.SingleQuotes:
		return quoted(sc, sc.Pos+1, "'", token.LitStrSingle, stSingle)
	case ch == '\'' && spec.CharLiterals:
		end, ok := sc.QuotedEnd(sc.Pos+1, "'", true)
		if ok {
			sc.Emit(token.LitStrChar, end)
		} else {
			sc.Emit(token.ErrorChar, end)
		}
	case ch == '`' && spec.Templates:
		return template(sc, sc.Pos+1)
	case lexer.IsDigit(ch) || (ch == '.' && lexer.IsDigit(sc.Peek(1))):
		tok, end := sc.NumberEnd(sc.Pos)
		sc.Emit(tok, end)
	case lexer.IsLetter(ch) || (ch != 0 && strings.ContainsRune(spec.IdentExtra, ch)):
		tm.word(sc)
	case ch == '@' && spec.Annotations && lexer.IsLetter(sc.Peek(1)):
		sc.Emit(token.NameAnnotation, sc.NameEnd(sc.Pos+1, "."))
	case strings.ContainsRune("{}()[]", ch):
		sc.EmitN(token.PunctGroup, 1)
	case ch == ';' || ch == ',':
		sc.EmitN(token.PunctSep, 1)
	case strings.ContainsRune(operatorRunes, ch):
		end := sc.Pos + 1
		for end < len(sc.Src) && strings.ContainsRune(operatorRunes, sc.Src[end]) &&
			!sc.HasPrefixAt(end, "//") && !sc.HasPrefixAt(end, "/*") {
			end++
		}
		sc.Emit(token.Operator, end)
	default:
		sc.EmitN(token.Error, 1)
	}
	return stDefault
}

// word tokenizes an identifier or reserved word.
func (tm *TokenMaker) word(sc *lexer.Scanner) {
	end := sc.Pos + 1
	for end < len(sc.Src) {
		r := sc.Src[end]
		if !lexer.IsLetterOrDigit(r) && !strings.ContainsRune(tm.spec.IdentExtra, r) {
			break
		}
		end++
	}
	if tok, ok := tm.words[sc.Word(sc.Pos, end)]; ok {
		sc.Emit(tok, end)
		return
	}
	tok := token.Name
	if sc.At(sc.SpaceEnd(end)) == '(' {
		tok = token.NameFunction
	}
	sc.Emit(tok, end)
}

// preproc tokenizes a preprocessor directive up to any comment,
// continuing on the next line if the line ends with a backslash.
func (tm *TokenMaker) preproc(sc *lexer.Scanner) lexer.State {
	end := len(sc.Src)
	for _, c := range []string{"//", "/*"} {
		if i := sc.Index(sc.Pos, c); i >= 0 {
			end = min(end, i)
		}
	}
	sc.Emit(token.Preprocessor, end)
	if sc.AtEnd() && sc.EndsWithEscape() {
		return stPreproc
	}
	return stDefault
}

// blockComment tokenizes a block comment from the current position,
// searching for its end from pos.
func blockComment(sc *lexer.Scanner, pos int, tok token.Tokens, open lexer.State) lexer.State {
	end := sc.Index(pos, "*/")
	if end < 0 {
		sc.EmitRest(tok)
		return open
	}
	sc.Emit(tok, end+2)
	return stDefault
}

// quoted tokenizes a string whose contents start at pos. An unterminated
// string continues on the next line only if escaped by a backslash.
func quoted(sc *lexer.Scanner, pos int, quote string, tok token.Tokens, open lexer.State) lexer.State {
	end, ok := sc.QuotedEnd(pos, quote, true)
	if ok {
		sc.Emit(tok, end)
		return stDefault
	}
	if sc.EndsWithEscape() {
		sc.Emit(tok, end)
		return open
	}
	sc.Emit(token.ErrorString, end)
	return stDefault
}

// template tokenizes a template literal whose contents start at pos.
func template(sc *lexer.Scanner, pos int) lexer.State {
	end, ok := sc.QuotedEnd(pos, "`", true)
	sc.Emit(token.LitStrBacktick, end)
	if ok {
		return stDefault
	}
	return stTemplate
}

func isTemplate(tk token.Tokens) bool {
	return tk == token.LitStrBacktick
}
