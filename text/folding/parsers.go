// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folding

import (
	"slices"
	"strings"
	"unicode"

	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// KeywordPair is a pair of keywords delimiting a foldable block,
// such as do and done in shell scripts.
type KeywordPair struct {
	Open  string
	Close string
	Type  FoldTypes
}

// CurlyParser folds the bracketed blocks of curly brace languages.
// Braces always fold; the other options add further constructs.
type CurlyParser struct {

	// Parens also folds parentheses spanning lines.
	Parens bool

	// Brackets also folds square brackets spanning lines.
	Brackets bool

	// Comments folds multi-line comments.
	Comments bool

	// ParenKeywords folds parenthesized groups introduced by the given
	// keywords, with the given fold type, as in Go import ( ... ).
	// It is only needed when Parens is off.
	ParenKeywords map[string]FoldTypes

	// Keywords are keyword pairs that delimit blocks.
	Keywords []KeywordPair

	// Regions folds sections between single-line comments starting
	// with "region" and "endregion".
	Regions bool
}

// Boundaries implements [Parser].
func (cp *CurlyParser) Boundaries(ln Line, dst []Boundary) []Boundary {
	if cp.Comments {
		dst = multilineClose(ln, token.Tokens.IsComment, FoldComment, dst)
	}
	prev := token.None // previous non-space token
	prevWord := ""
	for _, lx := range ln.Tokens {
		tok := lx.Token
		switch {
		case tok.IsWhitespace():
			continue
		case tok.Cat() == token.Punctuation && lx.Len() == 1:
			dst = cp.bracket(ln.Src[lx.Start], lx.Start, prev, prevWord, dst)
		case tok.IsKeyword() && len(cp.Keywords) > 0:
			word := ln.Text(lx)
			for _, kp := range cp.Keywords {
				if word == kp.Open {
					dst = append(dst, Boundary{Col: lx.Start, Kind: Open, Type: kp.Type, Key: kp.Open})
				} else if word == kp.Close {
					dst = append(dst, Boundary{Col: lx.Start, Kind: Close, Type: kp.Type, Key: kp.Open})
				}
			}
		case cp.Regions && tok == token.CommentSingle:
			dst = regionBoundary(ln.Text(lx), lx.Start, dst)
		}
		prev = tok
		if tok.IsKeyword() {
			prevWord = ln.Text(lx)
		} else {
			prevWord = ""
		}
	}
	if cp.Comments {
		dst = multilineOpen(ln, token.Tokens.IsComment, FoldComment, false, dst)
	}
	return dst
}

// bracket appends the boundary for a bracket rune at col, if it folds.
func (cp *CurlyParser) bracket(r rune, col int, prev token.Tokens, prevWord string, dst []Boundary) []Boundary {
	switch r {
	case '{':
		return append(dst, Boundary{Col: col, Kind: Open, Type: FoldCode, Key: "{"})
	case '}':
		return append(dst, Boundary{Col: col, Kind: Close, Type: FoldCode, Key: "{"})
	case '(':
		if cp.Parens {
			return append(dst, Boundary{Col: col, Kind: Open, Type: FoldCode, Key: "("})
		}
		if ft, ok := cp.ParenKeywords[prevWord]; ok && prev.IsKeyword() {
			return append(dst, Boundary{Col: col, Kind: Open, Type: ft, Key: "("})
		}
	case ')':
		if cp.Parens || len(cp.ParenKeywords) > 0 {
			return append(dst, Boundary{Col: col, Kind: Close, Type: FoldCode, Key: "("})
		}
	case '[':
		if cp.Brackets {
			return append(dst, Boundary{Col: col, Kind: Open, Type: FoldCode, Key: "["})
		}
	case ']':
		if cp.Brackets {
			return append(dst, Boundary{Col: col, Kind: Close, Type: FoldCode, Key: "["})
		}
	}
	return dst
}

// regionBoundary appends a section boundary for a region comment.
func regionBoundary(text string, col int, dst []Boundary) []Boundary {
	word := strings.TrimLeftFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	word = strings.ToLower(word)
	switch {
	case strings.HasPrefix(word, "endregion"):
		return append(dst, Boundary{Col: col, Kind: Close, Type: FoldSection, Key: "region"})
	case strings.HasPrefix(word, "region"):
		return append(dst, Boundary{Col: col, Kind: Open, Type: FoldSection, Key: "region"})
	}
	return dst
}

// MarkupParser folds the elements of XML and HTML, from a start tag
// to its end tag, along with multi-line comments and CDATA sections.
type MarkupParser struct {

	// Void are the elements that never have an end tag,
	// such as br in HTML, which must be in lower case if
	// IgnoreCase is set.
	Void map[string]bool

	// IgnoreCase matches tag names regardless of case.
	IgnoreCase bool
}

// HTMLVoid are the void elements of HTML.
var HTMLVoid = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func isCData(tk token.Tokens) bool { return tk == token.MarkupCData }

// Boundaries implements [Parser].
func (mp *MarkupParser) Boundaries(ln Line, dst []Boundary) []Boundary {
	dst = multilineClose(ln, token.Tokens.IsComment, FoldComment, dst)
	dst = multilineClose(ln, isCData, FoldCode, dst)
	open := -1 // index in dst of the Open of a start tag on this line
	toks := ln.Tokens
	for i, lx := range toks {
		if lx.Token != token.MarkupTagDelimiter {
			continue
		}
		switch ln.Text(lx) {
		case "<":
			name := mp.tagName(ln, toks, i+1)
			if name == "" || mp.Void[name] {
				continue
			}
			dst = append(dst, Boundary{Col: lx.Start, Kind: Open, Type: FoldMarkup, Key: name})
			open = len(dst) - 1
		case "</":
			if name := mp.tagName(ln, toks, i+1); name != "" {
				dst = append(dst, Boundary{Col: lx.Start, Kind: Close, Type: FoldMarkup, Key: name})
			}
		case "/>":
			if open >= 0 {
				dst = slices.Delete(dst, open, open+1)
			}
			open = -1
		case ">":
			open = -1
		}
	}
	dst = multilineOpen(ln, token.Tokens.IsComment, FoldComment, false, dst)
	dst = multilineOpen(ln, isCData, FoldCode, false, dst)
	return dst
}

// tagName returns the tag name at token index i, if any.
func (mp *MarkupParser) tagName(ln Line, toks lexer.Line, i int) string {
	if i >= len(toks) || toks[i].Token != token.MarkupTagName {
		return ""
	}
	name := ln.Text(toks[i])
	if mp.IgnoreCase {
		name = strings.ToLower(name)
	}
	return name
}

// MultilineParser folds any construct of the matching token class that
// spans lines, such as triple-quoted strings, fenced code blocks and
// here-documents, using the lexical state at the ends of each line.
type MultilineParser struct {

	// Match is whether a token type belongs to the construct.
	Match func(tk token.Tokens) bool

	// Type is the fold type.
	Type FoldTypes

	// AnyColumn allows the construct to start before the last token
	// of its first line, as a here-document does.
	AnyColumn bool
}

// Boundaries implements [Parser].
func (mp *MultilineParser) Boundaries(ln Line, dst []Boundary) []Boundary {
	dst = multilineClose(ln, mp.Match, mp.Type, dst)
	return multilineOpen(ln, mp.Match, mp.Type, mp.AnyColumn, dst)
}

// ChainParser combines the boundaries of several parsers,
// in column order.
type ChainParser []Parser

// Boundaries implements [Parser].
func (cp ChainParser) Boundaries(ln Line, dst []Boundary) []Boundary {
	st := len(dst)
	for _, p := range cp {
		dst = p.Boundaries(ln, dst)
	}
	slices.SortStableFunc(dst[st:], func(a, b Boundary) int {
		return a.Col - b.Col
	})
	return dst
}
