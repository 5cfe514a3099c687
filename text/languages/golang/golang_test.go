// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package golang

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
	assert.Equal(t, `Keyword:"func" TextWhitespace:" " NameFunction:"f" PunctGroup:"(" Name:"x" TextWhitespace:" " KeywordType:"int" PunctGroup:")" TextWhitespace:" " PunctGroup:"{"`,
		langtest.Tag(t, tm, "func f(x int) {"))
	assert.Equal(t, `Name:"r" TextWhitespace:" " Operator:":=" TextWhitespace:" " LitStrChar:"'\\n'" TextWhitespace:" " CommentSingle:"// nl"`,
		langtest.Tag(t, tm, `r := '\n' // nl`))
	assert.Equal(t, `NameBuiltin:"len" PunctGroup:"(" LitStrDouble:"\"a\\\"b\"" PunctGroup:")" Operator:"+" LitNumFloat:"1.5e3"`,
		langtest.Tag(t, tm, `len("a\"b")+1.5e3`))
	assert.Equal(t, `ErrorString:"\"abc"`, langtest.Tag(t, tm, `"abc`))
}

func TestMultiline(t *testing.T) {
	tags, exits := langtest.Tags(t, New(), "s := `a", "b", "c` /* d", "e */")
	assert.Equal(t, []string{
		"Name:\"s\" TextWhitespace:\" \" Operator:\":=\" TextWhitespace:\" \" LitStrBacktick:\"`a\"",
		`LitStrBacktick:"b"`,
		"LitStrBacktick:\"c`\" TextWhitespace:\" \" CommentMultiline:\"/* d\"",
		`CommentMultiline:"e */"`,
	}, tags)
	assert.Equal(t, []lexer.State{stRaw, stRaw, stComment, stDefault}, exits)
	assert.Panics(t, func() { New().Tokenize(nil, 7, nil) })
}

func TestFolds(t *testing.T) {
	src := "package p\n\nimport (\n\t\"fmt\"\n)\n\nvar s = `x\ny`\n\nfunc f() {\n\tfmt.Println(s)\n}\n"
	ls := lines.New(src)
	en := syntax.NewEngine(ls, New())
	m := folding.NewManager(ls, en, NewFoldParser())
	assert.NoError(t, m.Validate())
	var types []folding.FoldTypes
	var spans [][2]int
	for _, f := range m.All() {
		types = append(types, f.Type)
		spans = append(spans, [2]int{f.StartLine(), f.EndLine()})
	}
	assert.Equal(t, []folding.FoldTypes{folding.FoldImports, folding.FoldCode, folding.FoldCode}, types)
	assert.Equal(t, [][2]int{{2, 4}, {6, 7}, {9, 11}}, spans)

	assert.Equal(t, 1, m.CollapseAllOfType(folding.FoldImports))
	assert.Equal(t, 2, m.HiddenLineCount())
}

func TestProperties(t *testing.T) {
	langtest.Properties(t, New(), []string{"/*", "*/", "//", "`", "\"", "'", "\\", "\n", "x", " ", "1", "{", "}", "("})
}
