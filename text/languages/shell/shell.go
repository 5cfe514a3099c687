// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell provides the TokenMaker and fold parser for POSIX
// shell scripts.
package shell

import (
	"strings"
	"unicode"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// The lexical states.
const (
	stDefault lexer.State = iota

	// stDouble is inside a double quoted string.
	stDouble

	// stSingle is inside a single quoted string.
	stSingle

	// stHeredoc is the base of the here-document states,
	// one for each distinct delimiter.
	stHeredoc lexer.State = 16
)

var words = map[string]token.Tokens{}

func init() {
	for _, w := range strings.Fields(`if then else elif fi case esac for while until do done in
		function select time`) {
		words[w] = token.Keyword
	}
	for _, w := range strings.Fields(`alias bg break cd command continue echo eval exec exit export
		false fg getopts hash jobs kill local printf pwd read readonly return set shift source test
		trap true type ulimit umask unalias unset wait`) {
		words[w] = token.NameBuiltin
	}
}

// heredoc is the delimiter of a here-document, and whether leading
// tabs are stripped from its lines, as with <<-.
type heredoc struct {
	word  string
	strip bool
}

// TokenMaker is the TokenMaker for shell scripts. The delimiters of
// here-documents are interned in it, so that each distinct delimiter
// has its own small state. Interning mutates the TokenMaker, so it
// must not be shared between goroutines.
type TokenMaker struct {
	delims  []heredoc
	indexes map[heredoc]lexer.State
}

// New returns a new shell TokenMaker.
func New() *TokenMaker {
	return &TokenMaker{indexes: map[heredoc]lexer.State{}}
}

func (tm *TokenMaker) DefaultState() lexer.State { return stDefault }

// intern returns the state for a here-document delimiter.
func (tm *TokenMaker) intern(h heredoc) lexer.State {
	if st, ok := tm.indexes[h]; ok {
		return st
	}
	st := stHeredoc + lexer.State(len(tm.delims))
	tm.delims = append(tm.delims, h)
	tm.indexes[h] = st
	return st
}

// delimiter returns the here-document delimiter for a state.
func (tm *TokenMaker) delimiter(st lexer.State) (heredoc, bool) {
	i := int(st - stHeredoc)
	if st < stHeredoc || i >= len(tm.delims) {
		return heredoc{}, false
	}
	return tm.delims[i], true
}

func (tm *TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	var sc lexer.Scanner
	sc.Init(src, out)
	switch st {
	case stDefault:
	case stDouble:
		st = quoted(&sc, 0, '"')
	case stSingle:
		st = quoted(&sc, 0, '\'')
	default:
		h, ok := tm.delimiter(st)
		if !ok {
			lexer.BadState("Shell", st)
		}
		sc.EmitRest(token.LitStrHeredoc)
		line := string(src)
		if h.strip {
			line = strings.TrimLeft(line, "\t")
		}
		if line == h.word {
			return sc.Out, stDefault
		}
		return sc.Out, st
	}
	pending := stDefault
	for st == stDefault && !sc.AtEnd() {
		st = tm.next(&sc, &pending)
	}
	if st == stDefault {
		st = pending
	}
	return sc.Out, st
}

// next tokenizes the next element in the default state. The state of
// the first here-document started on the line is set in pending.
func (tm *TokenMaker) next(sc *lexer.Scanner, pending *lexer.State) lexer.State {
	ch := sc.Ch()
	switch {
	case sc.EmitSpace():
	case ch == '#' && wordStart(sc):
		sc.EmitRest(token.CommentSingle)
	case ch == '"':
		return quoted(sc, sc.Pos+1, '"')
	case ch == '\'':
		return quoted(sc, sc.Pos+1, '\'')
	case ch == '`':
		end, ok := sc.QuotedEnd(sc.Pos+1, "`", true)
		if ok {
			sc.Emit(token.LitStrBacktick, end)
		} else {
			sc.Emit(token.ErrorString, end)
		}
	case ch == '$':
		variable(sc)
	case ch == '\\':
		sc.EmitN(token.Text, 2)
	case sc.HasPrefix("<<<"):
		sc.EmitN(token.Operator, 3)
	case sc.HasPrefix("<<"):
		h, end, ok := heredocAt(sc)
		if !ok {
			sc.EmitN(token.Operator, 2)
			break
		}
		sc.Emit(token.LitStrHeredoc, end)
		if *pending == stDefault {
			*pending = tm.intern(h)
		}
	case strings.ContainsRune("(){}", ch):
		sc.EmitN(token.PunctGroup, 1)
	case ch == ';' && sc.Peek(1) != ';':
		sc.EmitN(token.PunctSep, 1)
	case strings.ContainsRune("|&<>;", ch):
		end := sc.Pos + 1
		for end < len(sc.Src) && strings.ContainsRune("|&<>;", sc.Src[end]) && !sc.HasPrefixAt(end, "<<") {
			end++
		}
		sc.Emit(token.Operator, end)
	default:
		word(sc)
	}
	return stDefault
}

// wordStart returns whether the current position starts a word.
func wordStart(sc *lexer.Scanner) bool {
	prev := sc.Peek(-1)
	return prev < 0 || unicode.IsSpace(prev) || strings.ContainsRune(";&|()", prev)
}

// isWordRune returns whether the rune can be part of a plain word.
func isWordRune(r rune) bool {
	return !unicode.IsSpace(r) && !strings.ContainsRune("|&;<>(){}$`\"'\\", r)
}

// word tokenizes a plain word: a keyword, builtin, number, assignment
// or other name.
func word(sc *lexer.Scanner) {
	end := sc.Pos
	eq := -1
	for end < len(sc.Src) && isWordRune(sc.Src[end]) {
		if sc.Src[end] == '=' && eq < 0 {
			eq = end
		}
		end++
	}
	if end == sc.Pos {
		sc.EmitN(token.Error, 1)
		return
	}
	w := sc.Word(sc.Pos, end)
	if tok, ok := words[w]; ok {
		sc.Emit(tok, end)
		return
	}
	if eq > sc.Pos && sc.NameEnd(sc.Pos, "") == eq {
		sc.Emit(token.NameVariable, eq)
		sc.EmitN(token.Operator, 1)
		if sc.Pos < end {
			sc.Emit(token.Text, end)
		}
		return
	}
	if strings.Trim(w, "0123456789") == "" {
		sc.Emit(token.LitNumInteger, end)
		return
	}
	sc.Emit(token.Name, end)
}

// variable tokenizes a parameter expansion or command substitution.
func variable(sc *lexer.Scanner) {
	n := sc.Peek(1)
	switch {
	case n == '{':
		end := sc.Index(sc.Pos+2, "}")
		if end < 0 {
			sc.EmitRest(token.Error)
			return
		}
		sc.Emit(token.NameVariable, end+1)
	case n == '(':
		sc.EmitN(token.Operator, 2)
	case lexer.IsLetter(n):
		sc.Emit(token.NameVariable, sc.NameEnd(sc.Pos+1, ""))
	case n >= 0 && strings.ContainsRune("0123456789@*#?$!-", n):
		sc.EmitN(token.NameVariable, 2)
	default:
		sc.EmitN(token.Text, 1)
	}
}

// quoted tokenizes a string from pos up to its closing quote,
// which may be on a later line.
func quoted(sc *lexer.Scanner, pos int, q rune) lexer.State {
	tok, open := token.LitStrDouble, stDouble
	if q == '\'' {
		tok, open = token.LitStrSingle, stSingle
	}
	end, ok := sc.QuotedEnd(pos, string(q), q == '"')
	sc.Emit(tok, end)
	if ok {
		return stDefault
	}
	return open
}

// heredocAt reads a here-document redirection at the current
// position, returning its delimiter and end.
func heredocAt(sc *lexer.Scanner) (heredoc, int, bool) {
	var h heredoc
	pos := sc.Pos + 2
	if sc.At(pos) == '-' {
		h.strip = true
		pos++
	}
	pos = sc.SpaceEnd(pos)
	if q := sc.At(pos); q == '\'' || q == '"' {
		end := sc.Index(pos+1, string(q))
		if end <= pos+1 {
			return h, 0, false
		}
		h.word = sc.Word(pos+1, end)
		return h, end + 1, true
	}
	end := pos
	for end < len(sc.Src) && (lexer.IsLetterOrDigit(sc.Src[end]) || strings.ContainsRune("-.", sc.Src[end])) {
		end++
	}
	if end == pos {
		return h, 0, false
	}
	h.word = sc.Word(pos, end)
	return h, end, true
}

func isQuoted(tk token.Tokens) bool {
	return tk == token.LitStrDouble || tk == token.LitStrSingle
}

func isHeredoc(tk token.Tokens) bool { return tk == token.LitStrHeredoc }

// NewFoldParser returns the fold parser for shell scripts, which folds
// brace groups, compound commands, here-documents and multi-line
// strings.
func NewFoldParser() folding.Parser {
	return folding.ChainParser{
		&folding.CurlyParser{Keywords: []folding.KeywordPair{
			{Open: "do", Close: "done", Type: folding.FoldCode},
			{Open: "if", Close: "fi", Type: folding.FoldCode},
			{Open: "case", Close: "esac", Type: folding.FoldCode},
		}},
		&folding.MultilineParser{Match: isHeredoc, Type: folding.FoldCode, AnyColumn: true},
		&folding.MultilineParser{Match: isQuoted, Type: folding.FoldCode},
	}
}
