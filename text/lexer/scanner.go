// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"strings"
	"unicode"

	"cogentcore.org/lexfold/text/token"
)

// Scanner is the shared scanning state used by the hand-written
// [TokenMaker] implementations for one line: the source runes, the
// current position, and the output tokens. Positions are rune indexes.
type Scanner struct {

	// Src is the line being tokenized.
	Src []rune

	// Pos is the current position; everything before it has been emitted.
	Pos int

	// Out is the output token line.
	Out Line
}

// Init resets the scanner for a new line, appending to out[:0].
func (sc *Scanner) Init(src []rune, out Line) {
	sc.Src = src
	sc.Pos = 0
	sc.Out = out[:0]
}

// AtEnd returns true if the whole line has been emitted.
func (sc *Scanner) AtEnd() bool {
	return sc.Pos >= len(sc.Src)
}

// Ch returns the rune at the current position, -1 at the end.
func (sc *Scanner) Ch() rune {
	return sc.At(sc.Pos)
}

// Peek returns the rune at the given offset from the current position,
// -1 if out of range.
func (sc *Scanner) Peek(off int) rune {
	return sc.At(sc.Pos + off)
}

// At returns the rune at the given position, -1 if out of range.
func (sc *Scanner) At(pos int) rune {
	if pos < 0 || pos >= len(sc.Src) {
		return -1
	}
	return sc.Src[pos]
}

// HasPrefix returns true if the source at the current position starts with s.
func (sc *Scanner) HasPrefix(s string) bool {
	return sc.HasPrefixAt(sc.Pos, s)
}

// HasPrefixAt returns true if the source at pos starts with s.
func (sc *Scanner) HasPrefixAt(pos int, s string) bool {
	for _, r := range s {
		if pos >= len(sc.Src) || sc.Src[pos] != r {
			return false
		}
		pos++
	}
	return true
}

// combines returns true for token types where adjacent elements of the
// same type are combined into one: literals, comments, text and errors.
func combines(tok token.Tokens) bool {
	switch tok.Cat() {
	case token.Literal, token.Comment, token.Text, token.Error:
		return true
	}
	return false
}

// Emit adds a token from the current position to end, and advances to end.
// Nothing is added if end is not past the current position.
func (sc *Scanner) Emit(tok token.Tokens, end int) {
	end = min(end, len(sc.Src))
	if end <= sc.Pos {
		return
	}
	if n := len(sc.Out); n > 0 && combines(tok) {
		last := &sc.Out[n-1]
		if last.Token == tok && last.End == sc.Pos {
			last.End = end
			sc.Pos = end
			return
		}
	}
	sc.Out.Add(tok, sc.Pos, end)
	sc.Pos = end
}

// EmitN adds a token for the next n runes.
func (sc *Scanner) EmitN(tok token.Tokens, n int) {
	sc.Emit(tok, sc.Pos+n)
}

// EmitRest adds a token for the rest of the line.
func (sc *Scanner) EmitRest(tok token.Tokens) {
	sc.Emit(tok, len(sc.Src))
}

// SpaceEnd returns the end of the run of whitespace starting at pos.
func (sc *Scanner) SpaceEnd(pos int) int {
	for pos < len(sc.Src) && unicode.IsSpace(sc.Src[pos]) {
		pos++
	}
	return pos
}

// EmitSpace emits a whitespace token for any whitespace at the current
// position, returning true if there was any.
func (sc *Scanner) EmitSpace() bool {
	end := sc.SpaceEnd(sc.Pos)
	if end == sc.Pos {
		return false
	}
	sc.Emit(token.TextWhitespace, end)
	return true
}

// Index returns the position of the first instance of s at or after pos,
// or -1 if not found. It is the rune equivalent of [strings.Index].
func (sc *Scanner) Index(pos int, s string) int {
	for i := max(pos, 0); i < len(sc.Src); i++ {
		if sc.HasPrefixAt(i, s) {
			return i
		}
	}
	return -1
}

// NameEnd returns the end of the identifier starting at pos, which is pos
// itself if there is no identifier there. Identifiers start with a letter
// or underscore, followed by letters, digits and underscores; extra
// allows other runes (such as '-' or '$') after the first.
func (sc *Scanner) NameEnd(pos int, extra string) int {
	if pos >= len(sc.Src) || !IsLetter(sc.Src[pos]) {
		return pos
	}
	pos++
	for pos < len(sc.Src) {
		r := sc.Src[pos]
		if !IsLetterOrDigit(r) && !strings.ContainsRune(extra, r) {
			break
		}
		pos++
	}
	return pos
}

// Word returns the source from st to ed as a string.
func (sc *Scanner) Word(st, ed int) string {
	return string(sc.Src[st:ed])
}

// NumberEnd reads a number literal starting at pos, returning the
// token type and its end. It handles hex, octal and binary prefixes,
// digit separators, fractions, exponents and type suffixes. A number
// run into trailing letters is an [token.ErrorNumber].
func (sc *Scanner) NumberEnd(pos int) (token.Tokens, int) {
	tok := token.LitNumInteger
	src := sc.Src
	isDigitAt := func(p int, hex bool) bool {
		if p >= len(src) {
			return false
		}
		r := src[p]
		if hex {
			return IsHexDigit(r) || r == '_'
		}
		return IsDigit(r) || r == '_'
	}
	if sc.At(pos) == '0' && (sc.At(pos+1) == 'x' || sc.At(pos+1) == 'X') {
		tok = token.LitNumHex
		pos += 2
		for isDigitAt(pos, true) {
			pos++
		}
	} else if sc.At(pos) == '0' && (sc.At(pos+1) == 'b' || sc.At(pos+1) == 'B' || sc.At(pos+1) == 'o' || sc.At(pos+1) == 'O') {
		pos += 2
		for isDigitAt(pos, false) {
			pos++
		}
	} else {
		for isDigitAt(pos, false) {
			pos++
		}
		if nx := sc.At(pos + 1); sc.At(pos) == '.' && nx != '.' && !IsLetter(nx) {
			tok = token.LitNumFloat
			pos++
			for isDigitAt(pos, false) {
				pos++
			}
		}
		if r := sc.At(pos); r == 'e' || r == 'E' {
			p := pos + 1
			if s := sc.At(p); s == '+' || s == '-' {
				p++
			}
			if IsDigit(sc.At(p)) {
				tok = token.LitNumFloat
				pos = p
				for isDigitAt(pos, false) {
					pos++
				}
			}
		}
	}
	st := pos
	for pos < len(src) && IsLetterOrDigit(src[pos]) {
		pos++
	}
	if suffix := string(src[st:pos]); strings.Trim(suffix, "uUlLfFdDin") != "" {
		tok = token.ErrorNumber
	}
	return tok, pos
}

// QuotedEnd reads a quoted literal whose contents start at pos (just after
// the opening quote), returning the end just after the closing quote and
// true, or the end of the line and false if it is not closed. If escapes
// is true, a backslash escapes the following rune.
func (sc *Scanner) QuotedEnd(pos int, quote string, escapes bool) (int, bool) {
	for pos < len(sc.Src) {
		if escapes && sc.Src[pos] == '\\' {
			pos += 2
			continue
		}
		if sc.HasPrefixAt(pos, quote) {
			return pos + len([]rune(quote)), true
		}
		pos++
	}
	return len(sc.Src), false
}

// EndsWithEscape returns true if the line ends with an odd number of
// backslashes, which escapes the line break.
func (sc *Scanner) EndsWithEscape() bool {
	n := 0
	for i := len(sc.Src) - 1; i >= 0 && sc.Src[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// IsLetter returns true if the rune is a letter or underscore,
// which can start an identifier.
func IsLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsDigit returns true if the rune is a decimal digit.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsHexDigit returns true if the rune is a hexadecimal digit.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// IsLetterOrDigit returns true if the rune can continue an identifier.
func IsLetterOrDigit(r rune) bool {
	return IsLetter(r) || unicode.IsDigit(r)
}
