// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages/langtest"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/syntax"
	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tm := New()
	tests := []struct {
		src  string
		want string
	}{
		{"# Title *x*", `MarkupHeading:"# Title *x*"`},
		{"#tag", `Text:"#tag"`},
		{"- item with `code` and **bold**", "Operator:\"-\" TextWhitespace:\" \" Text:\"item\" TextWhitespace:\" \" Text:\"with\" TextWhitespace:\" \" MarkupCode:\"`code`\" TextWhitespace:\" \" Text:\"and\" TextWhitespace:\" \" MarkupEmphasis:\"**bold**\""},
		{"See [docs](http://x) now", `Text:"See" TextWhitespace:" " MarkupLink:"[docs](http://x)" TextWhitespace:" " Text:"now"`},
		{"a_b <!-- c -->", `Text:"a_b" TextWhitespace:" " MarkupComment:"<!-- c -->"`},
		{"1. x", `Operator:"1." TextWhitespace:" " Text:"x"`},
		{"> *", `Operator:">" TextWhitespace:" " Text:"*"`},
		{"* * *", `Operator:"* * *"`},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, langtest.Tag(t, tm, test.src), test.src)
	}
}

func TestMultiline(t *testing.T) {
	tags, exits := langtest.Tags(t, New(), "```go", "x := 1", "````", "<!-- a", "b -->", "text")
	assert.Equal(t, []string{
		"MarkupCode:\"```go\"",
		`MarkupCode:"x := 1"`,
		"MarkupCode:\"````\"",
		`MarkupComment:"<!-- a"`,
		`MarkupComment:"b -->"`,
		`Text:"text"`,
	}, tags)
	fst := fenceState('`', 3)
	assert.Equal(t, []lexer.State{fst, fst, stDefault, stComment, stDefault, stDefault}, exits)

	_, exits = langtest.Tags(t, New(), "~~~~", "~~~", "```", "~~~~~")
	tst := fenceState('~', 4)
	assert.Equal(t, []lexer.State{tst, tst, tst, stDefault}, exits)

	assert.Panics(t, func() { New().Tokenize(nil, 5, nil) })
	assert.Panics(t, func() { New().Tokenize(nil, stFence+2, nil) })
}

func TestFolds(t *testing.T) {
	src := "```\nx\n```\n<!--\nc\n-->\n"
	ls := lines.New(src)
	en := syntax.NewEngine(ls, New())
	m := folding.NewManager(ls, en, NewFoldParser())
	assert.NoError(t, m.Validate())
	var spans [][2]int
	var types []folding.FoldTypes
	for _, f := range m.All() {
		spans = append(spans, [2]int{f.StartLine(), f.EndLine()})
		types = append(types, f.Type)
	}
	assert.Equal(t, [][2]int{{0, 2}, {3, 5}}, spans)
	assert.Equal(t, []folding.FoldTypes{folding.FoldCode, folding.FoldComment}, types)
}

func TestProperties(t *testing.T) {
	langtest.Properties(t, New(), []string{"```", "~~~", "`", "<!--", "-->", "*", "_", "#", " ", "\n", "a", "[", "](", ")", "\\", "-"})
}
