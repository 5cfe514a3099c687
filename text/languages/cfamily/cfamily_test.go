// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfamily

import (
	"testing"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages/langtest"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/syntax"
	"github.com/stretchr/testify/assert"
)

func TestCTokens(t *testing.T) {
	tm := New(C)
	assert.Equal(t, `KeywordType:"int" TextWhitespace:" " Name:"x" TextWhitespace:" " Operator:"=" TextWhitespace:" " LitNumHex:"0x1F" PunctSep:";" TextWhitespace:" " CommentSingle:"// hi"`,
		langtest.Tag(t, tm, "int x = 0x1F; // hi"))
	assert.Equal(t, `LitStrChar:"'a'" TextWhitespace:" " ErrorChar:"'b"`, langtest.Tag(t, tm, "'a' 'b"))
	assert.Equal(t, `NameBuiltin:"printf" PunctGroup:"(" LitStrDouble:"\"%d\"" PunctSep:"," TextWhitespace:" " NameFunction:"g" PunctGroup:"(" PunctGroup:")" PunctGroup:")"`,
		langtest.Tag(t, tm, `printf("%d", g())`))
	assert.Equal(t, `Error:"$"`, langtest.Tag(t, tm, "$"))
}

func TestBlockComments(t *testing.T) {
	tags, exits := langtest.Tags(t, New(C), "a /* b", "c", "d */ e")
	assert.Equal(t, []string{
		`Name:"a" TextWhitespace:" " CommentMultiline:"/* b"`,
		`CommentMultiline:"c"`,
		`CommentMultiline:"d */" TextWhitespace:" " Name:"e"`,
	}, tags)
	assert.Equal(t, []lexer.State{stComment, stComment, stDefault}, exits)

	tm := New(CPP)
	assert.Equal(t, `CommentDoc:"/** doc */" TextWhitespace:" " Name:"x"`, langtest.Tag(t, tm, "/** doc */ x"))
	assert.Equal(t, `CommentMultiline:"/**/"`, langtest.Tag(t, tm, "/**/"))
	_, exits = langtest.Tags(t, tm, "/** a", "b */")
	assert.Equal(t, []lexer.State{stDoc, stDefault}, exits)
}

func TestPreprocessor(t *testing.T) {
	tags, exits := langtest.Tags(t, New(C), `#define X \`, "  1", "  # include <a.h> // c")
	assert.Equal(t, []string{
		`Preprocessor:"#define X \\"`,
		`Preprocessor:"  1"`,
		`TextWhitespace:"  " Preprocessor:"# include <a.h> " CommentSingle:"// c"`,
	}, tags)
	assert.Equal(t, []lexer.State{stPreproc, stDefault, stDefault}, exits)
}

func TestStrings(t *testing.T) {
	tags, exits := langtest.Tags(t, New(C), `s = "ab\`, `cd" x`, `"open`)
	assert.Equal(t, []string{
		`Name:"s" TextWhitespace:" " Operator:"=" TextWhitespace:" " LitStrDouble:"\"ab\\"`,
		`LitStrDouble:"cd\"" TextWhitespace:" " Name:"x"`,
		`ErrorString:"\"open"`,
	}, tags)
	assert.Equal(t, []lexer.State{stString, stDefault, stDefault}, exits)

	_, exits = langtest.Tags(t, New(JavaScript), `'a\`, `b'`)
	assert.Equal(t, []lexer.State{stSingle, stDefault}, exits)
}

func TestTemplates(t *testing.T) {
	tags, exits := langtest.Tags(t, New(JavaScript), "x = `a", "b ${y}", "c` + 1")
	assert.Equal(t, []string{
		"Name:\"x\" TextWhitespace:\" \" Operator:\"=\" TextWhitespace:\" \" LitStrBacktick:\"`a\"",
		"LitStrBacktick:\"b ${y}\"",
		"LitStrBacktick:\"c`\" TextWhitespace:\" \" Operator:\"+\" TextWhitespace:\" \" LitNumInteger:\"1\"",
	}, tags)
	assert.Equal(t, []lexer.State{stTemplate, stTemplate, stDefault}, exits)
}

func TestJavaAndJSON(t *testing.T) {
	assert.Equal(t, `NameAnnotation:"@Override" TextWhitespace:" " Keyword:"void" TextWhitespace:" " NameFunction:"f" PunctGroup:"(" PunctGroup:")"`,
		langtest.Tag(t, New(Java), "@Override void f()"))
	assert.Equal(t, `PunctGroup:"{" LitStrDouble:"\"a\"" Operator:":" TextWhitespace:" " PunctGroup:"[" LitNumInteger:"1" PunctSep:"," TextWhitespace:" " KeywordConstant:"true" PunctGroup:"]" PunctGroup:"}"`,
		langtest.Tag(t, New(JSON), `{"a": [1, true]}`))
	assert.Equal(t, `Operator:"//"`, langtest.Tag(t, New(JSON), "//"))
}

func TestBadState(t *testing.T) {
	assert.PanicsWithValue(t, "lexer: C TokenMaker called with unknown state 42", func() {
		New(C).Tokenize([]rune("x"), 42, nil)
	})
}

func TestFolds(t *testing.T) {
	ls := lines.New("/*\n x\n*/\nint f() {\n  return 1;\n}")
	en := syntax.NewEngine(ls, New(C))
	m := folding.NewManager(ls, en, NewFoldParser(C))
	assert.NoError(t, m.Validate())
	var got [][2]int
	for _, f := range m.All() {
		got = append(got, [2]int{f.StartLine(), f.EndLine()})
	}
	assert.Equal(t, [][2]int{{0, 2}, {3, 5}}, got)
	assert.Equal(t, folding.FoldComment, m.All()[0].Type)
}

func TestProperties(t *testing.T) {
	frags := []string{"/*", "*/", "/**", "//", "\"", "'", "`", "\\", "\n", "a", " ", "1", ".5", "#", "{", "}", "+"}
	for _, spec := range []*Spec{C, CPP, Java, JavaScript, JSON} {
		t.Run(spec.Name, func(t *testing.T) {
			langtest.Properties(t, New(spec), frags)
		})
	}
}
