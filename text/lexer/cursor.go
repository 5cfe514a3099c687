// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "cogentcore.org/lexfold/text/token"

// Cursor is a lightweight iterator over the tokens of one line,
// giving the "next token" style of traversal of a linked token list.
// A Cursor past the last token is the null sentinel: Valid returns
// false and Type returns [token.None].
//
// A Cursor refers to the storage of the document it came from,
// and is only valid until the next edit of that document.
type Cursor struct {
	toks  Line
	src   []rune
	idx   int
	start int
}

// NewCursor returns a Cursor at the first token of the given line,
// with its text and the document offset of the start of the line.
func NewCursor(toks Line, src []rune, lineStart int) Cursor {
	return Cursor{toks: toks, src: src, start: lineStart}
}

// Valid returns false for the null sentinel past the end of the line.
func (c Cursor) Valid() bool {
	return c.idx >= 0 && c.idx < len(c.toks)
}

// Next returns the Cursor for the next token, which is the sentinel
// after the last token.
func (c Cursor) Next() Cursor {
	if c.Valid() {
		c.idx++
	}
	return c
}

// Index returns the index of the token within the line.
func (c Cursor) Index() int {
	return c.idx
}

// Lex returns the current Lex element, or the zero Lex for the sentinel.
func (c Cursor) Lex() Lex {
	if !c.Valid() {
		return Lex{}
	}
	return c.toks[c.idx]
}

// Type returns the token type, [token.None] for the sentinel.
func (c Cursor) Type() token.Tokens {
	return c.Lex().Token
}

// Column returns the rune index of the token within its line.
func (c Cursor) Column() int {
	if !c.Valid() {
		return len(c.src)
	}
	return c.toks[c.idx].Start
}

// Offset returns the document offset of the first rune of the token.
func (c Cursor) Offset() int {
	return c.start + c.Column()
}

// EndOffset returns the document offset just past the token.
func (c Cursor) EndOffset() int {
	return c.Offset() + c.Len()
}

// Len returns the number of runes in the token.
func (c Cursor) Len() int {
	return c.Lex().Len()
}

// Runes returns the token text, which must not be modified.
func (c Cursor) Runes() []rune {
	if !c.Valid() {
		return nil
	}
	return c.toks[c.idx].Src(c.src)
}

// Lexeme returns the token text as a string.
func (c Cursor) Lexeme() string {
	return string(c.Runes())
}

// IsSingleChar returns true if the token is exactly the given rune.
func (c Cursor) IsSingleChar(r rune) bool {
	rs := c.Runes()
	return len(rs) == 1 && rs[0] == r
}
