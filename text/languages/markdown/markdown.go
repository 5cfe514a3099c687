// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown provides the TokenMaker and fold parser for Markdown.
package markdown

import (
	"strings"
	"unicode"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// The lexical states. Inside a fenced code block, the state records
// the fence rune and length, which the closing fence must match.
const (
	stDefault lexer.State = iota

	// stComment is inside an HTML comment.
	stComment

	// stFence is the base of the fenced code block states:
	// stFence + length<<1, plus one for a tilde fence.
	stFence lexer.State = 16
)

// maxFence is the longest fence recorded in the state; longer
// fences are closed by any fence at least this long.
const maxFence = 64

func fenceState(ch rune, n int) lexer.State {
	st := stFence + lexer.State(min(n, maxFence)<<1)
	if ch == '~' {
		st++
	}
	return st
}

// fence returns the fence rune and length for a fence state.
func fence(st lexer.State) (rune, int, bool) {
	n := int(st-stFence) >> 1
	if st < stFence || n < 3 || n > maxFence {
		return 0, 0, false
	}
	if (st-stFence)&1 == 1 {
		return '~', n, true
	}
	return '`', n, true
}

// TokenMaker is the TokenMaker for Markdown.
type TokenMaker struct{}

// New returns a new Markdown TokenMaker.
func New() lexer.TokenMaker {
	return TokenMaker{}
}

func (TokenMaker) DefaultState() lexer.State { return stDefault }

func (TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	var sc lexer.Scanner
	sc.Init(src, out)
	switch {
	case st == stDefault:
		if ch, n, ok := fenceAt(&sc); ok {
			sc.EmitRest(token.MarkupCode)
			return sc.Out, fenceState(ch, n)
		}
		st = block(&sc)
	case st == stComment:
		st = comment(&sc, 0)
	default:
		ch, n, ok := fence(st)
		if !ok {
			lexer.BadState("Markdown", st)
		}
		sc.EmitRest(token.MarkupCode)
		if c2, n2, ok := fenceAt(&sc); ok && c2 == ch && n2 >= n && sc.SpaceEnd(fenceEnd(&sc)) == len(src) {
			return sc.Out, stDefault
		}
		return sc.Out, st
	}
	for st == stDefault && !sc.AtEnd() {
		st = inline(&sc)
	}
	return sc.Out, st
}

// fenceAt returns the rune and length of a code fence starting the
// line after at most three spaces. A backtick fence can not have
// backticks in its info string.
func fenceAt(sc *lexer.Scanner) (rune, int, bool) {
	pos := indent(sc)
	if pos < 0 {
		return 0, 0, false
	}
	ch := sc.At(pos)
	if ch != '`' && ch != '~' {
		return 0, 0, false
	}
	n := 0
	for sc.At(pos+n) == ch {
		n++
	}
	if n < 3 || (ch == '`' && sc.Index(pos+n, "`") >= 0) {
		return 0, 0, false
	}
	return ch, n, true
}

// fenceEnd returns the end of the fence run at the start of the line.
func fenceEnd(sc *lexer.Scanner) int {
	pos := indent(sc)
	ch := sc.At(pos)
	for sc.At(pos) == ch {
		pos++
	}
	return pos
}

// indent returns the position after at most three leading spaces,
// or -1 if there are more.
func indent(sc *lexer.Scanner) int {
	pos := 0
	for sc.At(pos) == ' ' {
		pos++
	}
	if pos > 3 {
		return -1
	}
	return pos
}

// block tokenizes the block marker at the start of a line:
// a heading, a block quote, a list item or a thematic break.
func block(sc *lexer.Scanner) lexer.State {
	pos := indent(sc)
	if pos < 0 {
		return stDefault
	}
	sc.Emit(token.TextWhitespace, pos)
	ch := sc.Ch()
	switch {
	case ch == '#':
		n := 0
		for sc.Peek(n) == '#' {
			n++
		}
		if n <= 6 && (sc.Peek(n) < 0 || unicode.IsSpace(sc.Peek(n))) {
			sc.EmitRest(token.MarkupHeading)
		}
	case ch == '>':
		sc.EmitN(token.Operator, 1)
	case (ch == '-' || ch == '*' || ch == '_') && thematic(sc):
		sc.EmitRest(token.Operator)
	case (ch == '-' || ch == '*' || ch == '+') && (sc.Peek(1) == ' ' || sc.Peek(1) < 0):
		sc.EmitN(token.Operator, 1)
	case lexer.IsDigit(ch):
		end := sc.Pos
		for lexer.IsDigit(sc.At(end)) {
			end++
		}
		if r := sc.At(end); (r == '.' || r == ')') && (sc.At(end+1) == ' ' || sc.At(end+1) < 0) {
			sc.Emit(token.Operator, end+1)
		}
	}
	return stDefault
}

// thematic returns whether the rest of the line is a thematic break:
// three or more of the same rune, with optional spaces.
func thematic(sc *lexer.Scanner) bool {
	ch := sc.Ch()
	n := 0
	for _, r := range sc.Src[sc.Pos:] {
		switch r {
		case ch:
			n++
		case ' ', '\t':
		default:
			return false
		}
	}
	return n >= 3
}

func inline(sc *lexer.Scanner) lexer.State {
	ch := sc.Ch()
	switch {
	case sc.EmitSpace():
	case sc.HasPrefix("<!--"):
		return comment(sc, sc.Pos+4)
	case ch == '\\' && sc.Peek(1) >= 0:
		sc.EmitN(token.Text, 2)
	case ch == '`':
		n := 0
		for sc.Peek(n) == '`' {
			n++
		}
		run := strings.Repeat("`", n)
		end := sc.Index(sc.Pos+n, run)
		if end < 0 {
			sc.EmitN(token.Text, n)
		} else {
			sc.Emit(token.MarkupCode, end+n)
		}
	case ch == '*' || (ch == '_' && !lexer.IsLetterOrDigit(sc.Peek(-1))):
		delim := string(ch)
		if sc.Peek(1) == ch {
			delim += delim
		}
		end := sc.Index(sc.Pos+len(delim)+1, delim)
		if end < 0 || unicode.IsSpace(sc.Peek(len(delim))) {
			sc.EmitN(token.Text, len(delim))
		} else {
			sc.Emit(token.MarkupEmphasis, end+len(delim))
		}
	case ch == '[' || (ch == '!' && sc.Peek(1) == '['):
		if end := link(sc); end > 0 {
			sc.Emit(token.MarkupLink, end)
		} else {
			sc.EmitN(token.Text, 1)
		}
	default:
		end := sc.Pos + 1
		for end < len(sc.Src) && !strings.ContainsRune("\\`*_[!< \t", sc.Src[end]) {
			end++
		}
		sc.Emit(token.Text, end)
	}
	return stDefault
}

// link returns the end of an inline link or image at the current
// position, or -1 if there is none.
func link(sc *lexer.Scanner) int {
	pos := sc.Pos
	if sc.Ch() == '!' {
		pos++
	}
	mid := sc.Index(pos+1, "](")
	if mid < 0 || sc.Index(pos+1, "]") != mid {
		return -1
	}
	end := sc.Index(mid+2, ")")
	if end < 0 {
		return -1
	}
	return end + 1
}

func comment(sc *lexer.Scanner, pos int) lexer.State {
	end := sc.Index(pos, "-->")
	if end < 0 {
		sc.EmitRest(token.MarkupComment)
		return stComment
	}
	sc.Emit(token.MarkupComment, end+3)
	return stDefault
}

func isCode(tk token.Tokens) bool { return tk == token.MarkupCode }

// NewFoldParser returns the fold parser for Markdown, which folds
// fenced code blocks and HTML comments.
func NewFoldParser() folding.Parser {
	return folding.ChainParser{
		&folding.MultilineParser{Match: isCode, Type: folding.FoldCode},
		&folding.MultilineParser{Match: token.Tokens.IsComment, Type: folding.FoldComment},
	}
}
