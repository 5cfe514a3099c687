// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/lexfold/text/token"
)

// Lex represents a single lexical element, with a token type,
// and start and end rune positions within a line of text.
type Lex struct {

	// Token is the type of the lexical element.
	Token token.Tokens

	// Start is the starting rune index within the line.
	Start int

	// End is the ending rune index within the line (exclusive).
	End int
}

// NewLex returns a new Lex for the given token and range.
func NewLex(tok token.Tokens, st, ed int) Lex {
	return Lex{Token: tok, Start: st, End: ed}
}

// Len returns the number of runes in the element.
func (lx Lex) Len() int {
	return lx.End - lx.Start
}

// Src returns the rune source for given lex item (does no validity checking).
func (lx Lex) Src(src []rune) []rune {
	return src[lx.Start:lx.End]
}

// ContainsPos returns true if the Lex element contains given character position.
func (lx Lex) ContainsPos(pos int) bool {
	return pos >= lx.Start && pos < lx.End
}

// String satisfies the [fmt.Stringer] interface.
func (lx Lex) String() string {
	return fmt.Sprintf("[%d:%d:%v]", lx.Start, lx.End, lx.Token)
}

// Line is the sequence of Lex elements for one line of text, in order.
// The elements of a tokenized line are contiguous and non-overlapping,
// and together cover the entire line.
type Line []Lex

// Add adds one element to the line.
func (ll *Line) Add(tok token.Tokens, st, ed int) {
	*ll = append(*ll, Lex{Token: tok, Start: st, End: ed})
}

// Clone returns a copy of the line.
func (ll Line) Clone() Line {
	if len(ll) == 0 {
		return nil
	}
	return slices.Clone(ll)
}

// AtPos returns the Lex element containing the given character position,
// or nil if none.
func (ll Line) AtPos(pos int) *Lex {
	for i := range ll {
		if ll[i].ContainsPos(pos) {
			return &ll[i]
		}
		if ll[i].Start > pos {
			break
		}
	}
	return nil
}

// Last returns the last element of the line, false if the line is empty.
func (ll Line) Last() (Lex, bool) {
	if len(ll) == 0 {
		return Lex{}, false
	}
	return ll[len(ll)-1], true
}

// LastToken returns the token type of the last element of the line,
// or [token.None] for an empty line.
func (ll Line) LastToken() token.Tokens {
	lx, _ := ll.Last()
	return lx.Token
}

// Validate checks that the elements exactly cover a line of n runes,
// with no gaps, overlaps or empty elements.
func (ll Line) Validate(n int) error {
	pos := 0
	for i, lx := range ll {
		if lx.Start != pos {
			return fmt.Errorf("lexer.Line: element %d %v starts at %d, expected %d", i, lx, lx.Start, pos)
		}
		if lx.End <= lx.Start {
			return fmt.Errorf("lexer.Line: element %d %v is empty", i, lx)
		}
		pos = lx.End
	}
	if pos != n {
		return fmt.Errorf("lexer.Line: elements end at %d, line length is %d", pos, n)
	}
	return nil
}

// Strings returns the source text of each element.
func (ll Line) Strings(src []rune) []string {
	s := make([]string, len(ll))
	for i, lx := range ll {
		s[i] = string(lx.Src(src))
	}
	return s
}

// TagSrc returns the source for the line, with each element
// prefixed by its token type, for debugging.
func (ll Line) TagSrc(src []rune) string {
	var sb strings.Builder
	for i, lx := range ll {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%q", lx.Token, string(lx.Src(src)))
	}
	return sb.String()
}
