// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package folding provides code folding: per-language [Parser]s that
// report the fold boundaries on each tokenized line, and the [Manager],
// which pairs boundaries into a tree of [Fold] regions anchored to
// self-adjusting document positions, and answers collapse and hidden
// line queries.
package folding

import (
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// FoldTypes are the types of fold, used for selective operations
// such as collapsing all comments.
type FoldTypes int32

const (
	// FoldCode is a block of code, such as a brace block.
	FoldCode FoldTypes = iota

	// FoldComment is a multi-line comment.
	FoldComment

	// FoldImports is a block of import declarations.
	FoldImports

	// FoldMarkup is a markup element spanning lines.
	FoldMarkup

	// FoldSection is a user-delimited region, marked by comments.
	FoldSection

	FoldTypesN
)

var foldTypeNames = [FoldTypesN]string{"Code", "Comment", "Imports", "Markup", "Section"}

func (ft FoldTypes) String() string {
	if ft < 0 || ft >= FoldTypesN {
		return "FoldTypes(invalid)"
	}
	return foldTypeNames[ft]
}

// FoldTypesValues returns all fold types.
func FoldTypesValues() []FoldTypes {
	vals := make([]FoldTypes, FoldTypesN)
	for i := range vals {
		vals[i] = FoldTypes(i)
	}
	return vals
}

// Kinds are the kinds of [Boundary].
type Kinds int32

const (
	// Open starts a fold region.
	Open Kinds = iota

	// Close ends a fold region.
	Close
)

func (k Kinds) String() string {
	if k == Open {
		return "Open"
	}
	return "Close"
}

// Boundary is one fold boundary event on a line.
type Boundary struct {

	// Col is the rune column of the boundary within its line.
	Col int

	// Kind is whether the boundary opens or closes a region.
	Kind Kinds

	// Type is the type of fold. It is only used for matching
	// a Close that has no Key.
	Type FoldTypes

	// Key optionally names the construct, such as a tag name or
	// an opening bracket, so that a Close is matched to the nearest
	// Open with the same Key.
	Key string
}

// Line is one tokenized line given to a [Parser].
type Line struct {

	// Number is the line index.
	Number int

	// Src is the text of the line.
	Src []rune

	// Tokens are the tokens of the line.
	Tokens lexer.Line

	// Continues is whether the line starts inside a multi-line construct
	// left open by the previous line.
	Continues bool

	// LeavesOpen is whether the line ends inside a multi-line construct.
	LeavesOpen bool
}

// Text returns the source text of the given token.
func (ln *Line) Text(lx lexer.Lex) string {
	return string(lx.Src(ln.Src))
}

// Parser finds the fold boundaries of one line. Boundaries must be
// appended to dst in increasing column order, and must depend only on
// the given Line. Pairing of boundaries and nesting is done by the
// [Manager], so parsers only report flat events.
type Parser interface {
	Boundaries(ln Line, dst []Boundary) []Boundary
}

// multilineClose appends a Close if the line ends a construct of the
// given token class that was left open by the previous line.
// The close is at the last rune of the first token.
func multilineClose(ln Line, match func(token.Tokens) bool, typ FoldTypes, dst []Boundary) []Boundary {
	n := len(ln.Tokens)
	if n == 0 || !ln.Continues {
		return dst
	}
	first := ln.Tokens[0]
	if !match(first.Token) || (n == 1 && ln.LeavesOpen) {
		return dst
	}
	return append(dst, Boundary{Col: first.End - 1, Kind: Close, Type: typ})
}

// multilineOpen appends an Open if the line leaves a construct of the
// given token class open. Normally the construct must be the last token;
// anyCol allows it to start earlier in the line, as here-documents do.
func multilineOpen(ln Line, match func(token.Tokens) bool, typ FoldTypes, anyCol bool, dst []Boundary) []Boundary {
	n := len(ln.Tokens)
	if n == 0 || !ln.LeavesOpen {
		return dst
	}
	idx := n - 1
	if anyCol {
		for idx >= 0 && !match(ln.Tokens[idx].Token) {
			idx--
		}
	}
	if idx < 0 || !match(ln.Tokens[idx].Token) {
		return dst
	}
	if idx == 0 && ln.Continues {
		return dst
	}
	return append(dst, Boundary{Col: ln.Tokens[idx].Start, Kind: Open, Type: typ})
}
