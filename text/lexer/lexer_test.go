// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"cogentcore.org/lexfold/text/token"
	"github.com/stretchr/testify/assert"
)

func TestLineValidate(t *testing.T) {
	ll := Line{{token.Name, 0, 3}, {token.TextWhitespace, 3, 4}, {token.Operator, 4, 5}}
	assert.NoError(t, ll.Validate(5))
	assert.Error(t, ll.Validate(6))
	gap := Line{{token.Name, 0, 3}, {token.Operator, 4, 5}}
	assert.Error(t, gap.Validate(5))
	empty := Line{{token.Name, 0, 0}}
	assert.Error(t, empty.Validate(0))
	assert.NoError(t, Line(nil).Validate(0))
}

func TestLineAccessors(t *testing.T) {
	src := []rune("x = 42")
	ll := Line{{token.Name, 0, 1}, {token.TextWhitespace, 1, 2}, {token.Operator, 2, 3}, {token.TextWhitespace, 3, 4}, {token.LitNumInteger, 4, 6}}
	assert.Equal(t, token.Operator, ll.AtPos(2).Token)
	assert.Nil(t, ll.AtPos(6))
	assert.Equal(t, token.LitNumInteger, ll.LastToken())
	assert.Equal(t, token.None, Line(nil).LastToken())
	assert.Equal(t, []string{"x", " ", "=", " ", "42"}, ll.Strings(src))
	assert.Equal(t, `Name:"x" TextWhitespace:" " Operator:"=" TextWhitespace:" " LitNumInteger:"42"`, ll.TagSrc(src))

	cl := ll.Clone()
	cl[0].Token = token.Error
	assert.Equal(t, token.Name, ll[0].Token)
}

func TestCursor(t *testing.T) {
	src := []rune("a+b")
	ll := Line{{token.Name, 0, 1}, {token.Operator, 1, 2}, {token.Name, 2, 3}}
	var lexemes []string
	var offsets []int
	for c := NewCursor(ll, src, 10); c.Valid(); c = c.Next() {
		lexemes = append(lexemes, c.Lexeme())
		offsets = append(offsets, c.Offset())
	}
	assert.Equal(t, []string{"a", "+", "b"}, lexemes)
	assert.Equal(t, []int{10, 11, 12}, offsets)

	end := NewCursor(ll, src, 10).Next().Next().Next()
	assert.False(t, end.Valid())
	assert.Equal(t, token.None, end.Type())
	assert.Equal(t, "", end.Lexeme())
	assert.False(t, end.Next().Valid())

	assert.True(t, NewCursor(ll, src, 0).Next().IsSingleChar('+'))
	assert.False(t, NewCursor(nil, nil, 0).Valid())
}

func TestScannerEmit(t *testing.T) {
	var sc Scanner
	sc.Init([]rune("// a b"), nil)
	sc.EmitN(token.CommentSingle, 2)
	sc.EmitRest(token.CommentSingle)
	assert.Equal(t, Line{{token.CommentSingle, 0, 6}}, sc.Out)
	assert.True(t, sc.AtEnd())

	sc.Init([]rune("(("), sc.Out)
	sc.EmitN(token.PunctGroup, 1)
	sc.EmitN(token.PunctGroup, 1)
	assert.Len(t, sc.Out, 2)
	sc.Emit(token.Name, 1)
	assert.Len(t, sc.Out, 2)
}

func TestScannerIndex(t *testing.T) {
	var sc Scanner
	sc.Init([]rune(" ( Hello } , ) ] Worabcld!"), nil)
	assert.Equal(t, 1, sc.Index(0, "("))
	assert.Equal(t, 9, sc.Index(0, "}"))
	assert.Equal(t, 20, sc.Index(0, "abc"))
	assert.Equal(t, -1, sc.Index(21, "abc"))
	assert.True(t, sc.HasPrefixAt(3, "Hello"))
	assert.Equal(t, 8, sc.NameEnd(3, ""))
	assert.Equal(t, 1, sc.SpaceEnd(0))
}

func TestNumberEnd(t *testing.T) {
	tests := []struct {
		src string
		tok token.Tokens
		end int
	}{
		{"0x1234", token.LitNumHex, 6},
		{"0123456789", token.LitNumInteger, 10},
		{"3.14", token.LitNumFloat, 4},
		{"1e10", token.LitNumFloat, 4},
		{"1_000u", token.LitNumInteger, 6},
		{"2.5f;", token.LitNumFloat, 4},
		{"12abc", token.ErrorNumber, 5},
		{"1..2", token.LitNumInteger, 1},
		{".5", token.LitNumFloat, 2},
	}
	for _, tt := range tests {
		var sc Scanner
		sc.Init([]rune(tt.src), nil)
		tok, end := sc.NumberEnd(0)
		assert.Equal(t, tt.tok, tok, tt.src)
		assert.Equal(t, tt.end, end, tt.src)
	}
}

func TestQuotedEnd(t *testing.T) {
	var sc Scanner
	sc.Init([]rune(`"a\"b" x`), nil)
	end, closed := sc.QuotedEnd(1, `"`, true)
	assert.True(t, closed)
	assert.Equal(t, 6, end)

	sc.Init([]rune(`'''doc`), nil)
	end, closed = sc.QuotedEnd(3, `'''`, true)
	assert.False(t, closed)
	assert.Equal(t, 6, end)

	sc.Init([]rune(`abc\`), nil)
	assert.True(t, sc.EndsWithEscape())
	sc.Init([]rune(`abc\\`), nil)
	assert.False(t, sc.EndsWithEscape())
}

func TestBadState(t *testing.T) {
	assert.PanicsWithValue(t, "lexer: Go TokenMaker called with unknown state 7", func() {
		BadState("Go", 7)
	})
}
