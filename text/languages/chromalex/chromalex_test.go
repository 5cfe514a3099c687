// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chromalex

import (
	"testing"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages/langtest"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/syntax"
	"cogentcore.org/lexfold/text/token"
	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tm, ok := New("rust")
	require.True(t, ok)
	assert.Equal(t, "Rust", tm.Name())
	_, ok = New("no-such-language")
	assert.False(t, ok)
}

func TestTokenize(t *testing.T) {
	tm, ok := New("go")
	require.True(t, ok)
	src := []rune("x := 10 // c")
	toks, st := tm.Tokenize(src, 0, nil)
	require.NoError(t, toks.Validate(len(src)))
	assert.Equal(t, lexer.State(0), st)
	assert.Equal(t, token.LitNumInteger, toks.AtPos(5).Token)
	assert.Equal(t, token.CommentSingle, toks.AtPos(9).Token)

	src = []rune("f(){}")
	toks, _ = tm.Tokenize(src, 0, nil)
	require.NoError(t, toks.Validate(len(src)))
	assert.Equal(t, []string{"f", "(", ")", "{", "}"}, toks.Strings(src))
	assert.Equal(t, token.PunctGroup, toks.AtPos(3).Token)

	assert.Panics(t, func() { tm.Tokenize(src, 1, nil) })
}

func TestConvert(t *testing.T) {
	assert.Equal(t, token.KeywordType, Convert(chroma.KeywordType))
	assert.Equal(t, token.Keyword, Convert(chroma.KeywordDeclaration))
	assert.Equal(t, token.LitStr, Convert(chroma.LiteralStringEscape))
	assert.Equal(t, token.Name, Convert(chroma.NameOther))
	assert.Equal(t, token.Text, Convert(chroma.GenericOutput))
}

func TestFolds(t *testing.T) {
	tm, ok := New("rust")
	require.True(t, ok)
	ls := lines.New("fn main() {\n    let x = 1;\n}\n")
	en := syntax.NewEngine(ls, tm)
	m := folding.NewManager(ls, en, NewFoldParser())
	require.Equal(t, 1, m.Count())
	assert.Equal(t, 2, m.All()[0].EndLine())
}

func TestProperties(t *testing.T) {
	tm, ok := New("python")
	require.True(t, ok)
	langtest.Properties(t, tm, []string{"def", " ", "\n", "x", "(", ")", "#", "\"", "'", "1", "é"})
}

func TestMatch(t *testing.T) {
	tm, ok := Match("lib.rs")
	require.True(t, ok)
	assert.Equal(t, "Rust", tm.Name())
	_, ok = Match("file.no-such-extension")
	assert.False(t, ok)
}
