// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

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
	assert.Equal(t, `NameVariable:"x" Operator:"=" Text:"1" PunctSep:";" TextWhitespace:" " NameBuiltin:"echo" TextWhitespace:" " LitStrDouble:"\"$x\"" TextWhitespace:" " NameVariable:"${y}" TextWhitespace:" " NameVariable:"$1" TextWhitespace:" " CommentSingle:"# c"`,
		langtest.Tag(t, tm, `x=1; echo "$x" ${y} $1 # c`))
	assert.Equal(t, `Name:"a#b" TextWhitespace:" " LitNumInteger:"2" Operator:">&" LitNumInteger:"1" TextWhitespace:" " Operator:"|" TextWhitespace:" " Name:"grep" TextWhitespace:" " Name:"-v" TextWhitespace:" " Name:"c" TextWhitespace:" " Operator:"&&" TextWhitespace:" " Keyword:"done"`,
		langtest.Tag(t, tm, "a#b 2>&1 | grep -v c && done"))
	assert.Equal(t, `Name:"cat" TextWhitespace:" " Operator:"<<<" TextWhitespace:" " Name:"word"`, langtest.Tag(t, tm, "cat <<< word"))
}

func TestStrings(t *testing.T) {
	tags, exits := langtest.Tags(t, New(), `echo "a`, `b" 'c`, `d'`)
	assert.Equal(t, []string{
		`NameBuiltin:"echo" TextWhitespace:" " LitStrDouble:"\"a"`,
		`LitStrDouble:"b\"" TextWhitespace:" " LitStrSingle:"'c"`,
		`LitStrSingle:"d'"`,
	}, tags)
	assert.Equal(t, []lexer.State{stDouble, stSingle, stDefault}, exits)
}

func TestHeredocs(t *testing.T) {
	tm := New()
	tags, exits := langtest.Tags(t, tm, "cat <<'END' | x", "$y", "END", "cat <<X", " X", "X", "cat <<END")
	assert.Equal(t, []string{
		`Name:"cat" TextWhitespace:" " LitStrHeredoc:"<<'END'" TextWhitespace:" " Operator:"|" TextWhitespace:" " Name:"x"`,
		`LitStrHeredoc:"$y"`,
		`LitStrHeredoc:"END"`,
		`Name:"cat" TextWhitespace:" " LitStrHeredoc:"<<X"`,
		`LitStrHeredoc:" X"`,
		`LitStrHeredoc:"X"`,
		`Name:"cat" TextWhitespace:" " LitStrHeredoc:"<<END"`,
	}, tags)
	assert.Equal(t, []lexer.State{stHeredoc, stHeredoc, stDefault, stHeredoc + 1, stHeredoc + 1, stDefault, stHeredoc}, exits)

	_, exits = langtest.Tags(t, tm, "cat <<-END", "\t\tEND")
	assert.Equal(t, []lexer.State{stHeredoc + 2, stDefault}, exits)

	assert.Panics(t, func() { New().Tokenize(nil, stHeredoc, nil) })
	assert.Panics(t, func() { New().Tokenize(nil, 5, nil) })
}

func TestFolds(t *testing.T) {
	src := "f() {\n  for x in a b; do\n    cat <<-EOF > out\n\thello $x\n\tEOF\n  done\n}\necho 'a\nb'\n"
	ls := lines.New(src)
	en := syntax.NewEngine(ls, New())
	m := folding.NewManager(ls, en, NewFoldParser())
	assert.NoError(t, m.Validate())
	var spans [][2]int
	for _, f := range m.All() {
		spans = append(spans, [2]int{f.StartLine(), f.EndLine()})
	}
	assert.Equal(t, [][2]int{{0, 6}, {1, 5}, {2, 4}, {7, 8}}, spans)
}

func TestProperties(t *testing.T) {
	langtest.Properties(t, New(), []string{"<<EOF", "EOF", "<<-EOF", "\tEOF", "<<'A'", "A", "\"", "'", "$", "{", "}", "#", " ", "\n", "a", "\\", "`", "do", "done", ";"})
}
