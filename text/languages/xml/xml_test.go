// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xml

import (
	"testing"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages/langtest"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/syntax"
	"github.com/stretchr/testify/assert"
)

func TestXMLTokens(t *testing.T) {
	tm := NewXML()
	assert.Equal(t, `MarkupTagDelimiter:"<" MarkupTagName:"a" TextWhitespace:" " MarkupAttribute:"href" Operator:"=" MarkupAttributeValue:"\"x\"" TextWhitespace:" " MarkupAttribute:"b" Operator:"=" MarkupAttributeValue:"'y'" MarkupTagDelimiter:">" Text:"t" TextWhitespace:" " MarkupEntity:"&amp;" TextWhitespace:" " Text:"&x" MarkupTagDelimiter:"</" MarkupTagName:"a" MarkupTagDelimiter:">"`,
		langtest.Tag(t, tm, `<a href="x" b='y'>t &amp; &x</a>`))
	assert.Equal(t, `MarkupProcessingInstruction:"<?xml version=\"1.0\"?>"`, langtest.Tag(t, tm, `<?xml version="1.0"?>`))
	assert.Equal(t, `MarkupDTD:"<!DOCTYPE note>"`, langtest.Tag(t, tm, `<!DOCTYPE note>`))
	assert.Equal(t, `Text:"a" TextWhitespace:" " Error:"<" TextWhitespace:" " Text:"b"`, langtest.Tag(t, tm, "a < b"))
	assert.Equal(t, `MarkupEntity:"&#x1F;"`, langtest.Tag(t, tm, "&#x1F;"))
}

func TestXMLMultiline(t *testing.T) {
	tags, exits := langtest.Tags(t, NewXML(), "<!-- c", `--> <x a="v`, `w" />`, "<![CDATA[ z", "]]>")
	assert.Equal(t, []string{
		`MarkupComment:"<!-- c"`,
		`MarkupComment:"-->" TextWhitespace:" " MarkupTagDelimiter:"<" MarkupTagName:"x" TextWhitespace:" " MarkupAttribute:"a" Operator:"=" MarkupAttributeValue:"\"v"`,
		`MarkupAttributeValue:"w\"" TextWhitespace:" " MarkupTagDelimiter:"/>"`,
		`MarkupCData:"<![CDATA[ z"`,
		`MarkupCData:"]]>"`,
	}, tags)
	assert.Equal(t, []lexer.State{
		state{kind: kComment}.pack(), state{kind: kDouble}.pack(), 0, state{kind: kCData}.pack(), 0,
	}, exits)
}

func TestHTMLEmbedded(t *testing.T) {
	tm := NewHTML()
	assert.Equal(t, `MarkupTagDelimiter:"<" MarkupTagName:"script" MarkupTagDelimiter:">" Keyword:"var" TextWhitespace:" " Name:"x" TextWhitespace:" " Operator:"=" TextWhitespace:" " LitNumInteger:"1" PunctSep:";" MarkupTagDelimiter:"</" MarkupTagName:"script" MarkupTagDelimiter:">"`,
		langtest.Tag(t, tm, "<script>var x = 1;</script>"))
	assert.Equal(t, `Text:"a" TextWhitespace:" " Text:"<" TextWhitespace:" " Text:"b"`, langtest.Tag(t, tm, "a < b"))

	tags, exits := langtest.Tags(t, tm, `<STYLE type="text/css">`, "p { /* a", "b */ }</style> <br>")
	assert.Equal(t, []string{
		`MarkupTagDelimiter:"<" MarkupTagName:"STYLE" TextWhitespace:" " MarkupAttribute:"type" Operator:"=" MarkupAttributeValue:"\"text/css\"" MarkupTagDelimiter:">"`,
		`Name:"p" TextWhitespace:" " PunctGroup:"{" TextWhitespace:" " CommentMultiline:"/* a"`,
		`CommentMultiline:"b */" TextWhitespace:" " PunctGroup:"}" MarkupTagDelimiter:"</" MarkupTagName:"style" MarkupTagDelimiter:">" TextWhitespace:" " MarkupTagDelimiter:"<" MarkupTagName:"br" MarkupTagDelimiter:">"`,
	}, tags)
	assert.Equal(t, []lexer.State{
		state{kind: kText, raw: rawStyle}.pack(), state{kind: kText, raw: rawStyle, inner: 1}.pack(), 0,
	}, exits)
}

func TestBadState(t *testing.T) {
	assert.Panics(t, func() { NewXML().Tokenize(nil, state{kind: kText, raw: rawScript}.pack(), nil) })
	assert.Panics(t, func() { NewHTML().Tokenize(nil, state{kind: kComment, raw: rawScript}.pack(), nil) })
	assert.Panics(t, func() { NewHTML().Tokenize(nil, state{kind: kTag, inner: 1}.pack(), nil) })
	assert.Panics(t, func() { NewHTML().Tokenize(nil, -3, nil) })
	assert.NotPanics(t, func() { NewHTML().Tokenize(nil, state{kind: kDouble, raw: rawScript}.pack(), nil) })
}

func TestHTMLFolds(t *testing.T) {
	src := "<html>\n<body>\n<p>a<br>\nb</p>\n<script>\nif (x) {\n}\n</script>\n</BODY>\n</html>\n"
	ls := lines.New(src)
	en := syntax.NewEngine(ls, NewHTML())
	m := folding.NewManager(ls, en, NewHTMLFoldParser())
	assert.NoError(t, m.Validate())
	var spans [][2]int
	for _, f := range m.All() {
		spans = append(spans, [2]int{f.StartLine(), f.EndLine()})
	}
	assert.Equal(t, [][2]int{{0, 9}, {1, 8}, {2, 3}, {4, 7}, {5, 6}}, spans)
	assert.Equal(t, folding.FoldCode, m.DeepestFoldContaining(ls.LineStart(6)).Type)
}

func TestXMLFolds(t *testing.T) {
	src := "<a>\n<!--\nx\n-->\n</a>\n"
	ls := lines.New(src)
	en := syntax.NewEngine(ls, NewXML())
	m := folding.NewManager(ls, en, NewXMLFoldParser())
	var types []folding.FoldTypes
	for _, f := range m.All() {
		types = append(types, f.Type)
	}
	assert.Equal(t, []folding.FoldTypes{folding.FoldMarkup, folding.FoldComment}, types)
}

func TestProperties(t *testing.T) {
	frags := []string{"<", "</", ">", "/>", "<!--", "-->", "<![CDATA[", "]]>", "<?", "?>", "\"", "'", "=", "a", " ", "\n", "&", ";"}
	t.Run("XML", func(t *testing.T) {
		langtest.Properties(t, NewXML(), frags)
	})
	t.Run("HTML", func(t *testing.T) {
		langtest.Properties(t, NewHTML(), append(frags, "<script>", "</script>", "<style>", "</style>", "{", "/*", "*/", "`"))
	})
}
