// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xml provides the TokenMakers and fold parsers for XML and
// HTML. The HTML TokenMaker tokenizes the contents of script and style
// elements with the JavaScript and CSS TokenMakers.
package xml

import (
	"strings"
	"unicode"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages/cfamily"
	"cogentcore.org/lexfold/text/languages/css"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/token"
)

// kinds are the kinds of lexical context, in the low bits of the state.
type kinds int32

const (
	// kText is between tags.
	kText kinds = iota

	// kComment is inside a comment.
	kComment

	// kCData is inside a CDATA section.
	kCData

	// kTag is inside a tag, after its name.
	kTag

	// kDouble is inside a double quoted attribute value.
	kDouble

	// kSingle is inside a single quoted attribute value.
	kSingle

	// kPI is inside a processing instruction.
	kPI

	// kDTD is inside a declaration such as DOCTYPE.
	kDTD
)

// raw elements, whose contents are tokenized by another TokenMaker.
const (
	rawNone = iota
	rawScript
	rawStyle
)

// state is an unpacked lexical state: the kind of context, the raw
// element it is in or whose start tag it is in, and the state of the
// TokenMaker for the raw element contents.
type state struct {
	kind  kinds
	raw   int
	inner lexer.State
}

func (s state) pack() lexer.State {
	return lexer.State(s.kind) | lexer.State(s.raw)<<3 | s.inner<<8
}

func unpack(st lexer.State) state {
	return state{kind: kinds(st & 7), raw: int(st>>3) & 31, inner: st >> 8}
}

// TokenMaker is the TokenMaker for XML or HTML.
type TokenMaker struct {
	lang string

	// html is whether this is HTML, which ignores case in
	// element names and has raw script and style elements.
	html bool

	// script and style tokenize the contents of raw elements.
	script lexer.TokenMaker
	style  lexer.TokenMaker
}

// NewXML returns a new XML TokenMaker.
func NewXML() *TokenMaker {
	return &TokenMaker{lang: "XML"}
}

// NewHTML returns a new HTML TokenMaker.
func NewHTML() *TokenMaker {
	return &TokenMaker{lang: "HTML", html: true, script: cfamily.New(cfamily.JavaScript), style: css.New()}
}

func (tm *TokenMaker) DefaultState() lexer.State { return 0 }

func (tm *TokenMaker) Tokenize(src []rune, st lexer.State, out lexer.Line) (lexer.Line, lexer.State) {
	var sc lexer.Scanner
	sc.Init(src, out)
	s := unpack(st)
	if st < 0 || s.raw > rawStyle || (s.raw != rawNone && (!tm.html || s.kind > kSingle || s.kind == kComment || s.kind == kCData)) ||
		(s.inner != 0 && (s.kind != kText || s.raw == rawNone)) {
		lexer.BadState(tm.lang, st)
	}
	for {
		if s.kind == kText && s.raw != rawNone {
			s = tm.rawText(&sc, s)
		}
		if sc.AtEnd() {
			break
		}
		switch s.kind {
		case kText:
			s = tm.text(&sc)
		case kComment:
			s = tm.until(&sc, "-->", token.MarkupComment, s)
		case kCData:
			s = tm.until(&sc, "]]>", token.MarkupCData, s)
		case kPI:
			s = tm.until(&sc, "?>", token.MarkupProcessingInstruction, s)
		case kDTD:
			s = tm.until(&sc, ">", token.MarkupDTD, s)
		case kTag:
			s = tm.tag(&sc, s)
		case kDouble, kSingle:
			s = tm.value(&sc, sc.Pos, s)
		}
	}
	return sc.Out, s.pack()
}

// until emits tok up to and including end, returning to text, or to
// the end of the line, staying in s.
func (tm *TokenMaker) until(sc *lexer.Scanner, end string, tok token.Tokens, s state) state {
	e := sc.Index(sc.Pos, end)
	if e < 0 {
		sc.EmitRest(tok)
		return s
	}
	sc.Emit(tok, e+len(end))
	return state{}
}

// open starts a construct of the given kind whose opening delimiter
// has length n.
func (tm *TokenMaker) open(sc *lexer.Scanner, n int, end string, tok token.Tokens, k kinds) state {
	e := sc.Index(sc.Pos+n, end)
	if e < 0 {
		sc.EmitRest(tok)
		return state{kind: k}
	}
	sc.Emit(tok, e+len(end))
	return state{}
}

func (tm *TokenMaker) text(sc *lexer.Scanner) state {
	ch := sc.Ch()
	switch {
	case sc.EmitSpace():
	case sc.HasPrefix("<!--"):
		return tm.open(sc, 4, "-->", token.MarkupComment, kComment)
	case sc.HasPrefix("<![CDATA["):
		return tm.open(sc, 9, "]]>", token.MarkupCData, kCData)
	case sc.HasPrefix("<?"):
		return tm.open(sc, 2, "?>", token.MarkupProcessingInstruction, kPI)
	case sc.HasPrefix("<!"):
		return tm.open(sc, 2, ">", token.MarkupDTD, kDTD)
	case sc.HasPrefix("</") && lexer.IsLetter(sc.Peek(2)):
		sc.EmitN(token.MarkupTagDelimiter, 2)
		sc.Emit(token.MarkupTagName, sc.NameEnd(sc.Pos, "-:."))
		return state{kind: kTag}
	case ch == '<' && lexer.IsLetter(sc.Peek(1)):
		sc.EmitN(token.MarkupTagDelimiter, 1)
		start := sc.Pos
		sc.Emit(token.MarkupTagName, sc.NameEnd(sc.Pos, "-:."))
		return state{kind: kTag, raw: tm.rawElement(sc.Word(start, sc.Pos))}
	case ch == '&':
		sc.Emit(entityToken(sc), entityEnd(sc))
	case ch == '<':
		sc.EmitN(tm.stray(), 1)
	default:
		end := sc.Pos + 1
		for end < len(sc.Src) && !strings.ContainsRune("<& \t", sc.Src[end]) {
			end++
		}
		sc.Emit(token.Text, end)
	}
	return state{}
}

// stray returns the token for a rune that is out of place,
// which HTML treats as text.
func (tm *TokenMaker) stray() token.Tokens {
	if tm.html {
		return token.Text
	}
	return token.Error
}

// rawElement returns the raw element for a start tag name.
func (tm *TokenMaker) rawElement(name string) int {
	if !tm.html {
		return rawNone
	}
	switch strings.ToLower(name) {
	case "script":
		return rawScript
	case "style":
		return rawStyle
	}
	return rawNone
}

// entityEnd returns the end of an entity reference at the current
// position, which is just the ampersand if it is not one.
func entityEnd(sc *lexer.Scanner) int {
	pos := sc.Pos + 1
	if sc.At(pos) == '#' {
		pos++
		if r := sc.At(pos); r == 'x' || r == 'X' {
			pos++
		}
		for lexer.IsHexDigit(sc.At(pos)) {
			pos++
		}
	} else {
		pos = sc.NameEnd(pos, "")
	}
	if pos > sc.Pos+1 && sc.At(pos) == ';' {
		return pos + 1
	}
	return sc.Pos + 1
}

func entityToken(sc *lexer.Scanner) token.Tokens {
	if entityEnd(sc) > sc.Pos+1 {
		return token.MarkupEntity
	}
	return token.Text
}

// tag tokenizes inside a tag, after its name.
func (tm *TokenMaker) tag(sc *lexer.Scanner, s state) state {
	ch := sc.Ch()
	switch {
	case sc.EmitSpace():
	case ch == '>':
		sc.EmitN(token.MarkupTagDelimiter, 1)
		if s.raw == rawNone {
			return state{}
		}
		return state{kind: kText, raw: s.raw, inner: tm.inner(s.raw).DefaultState()}
	case sc.HasPrefix("/>"):
		sc.EmitN(token.MarkupTagDelimiter, 2)
		return state{}
	case ch == '=':
		sc.EmitN(token.Operator, 1)
	case ch == '"':
		return tm.value(sc, sc.Pos+1, state{kind: kDouble, raw: s.raw})
	case ch == '\'':
		return tm.value(sc, sc.Pos+1, state{kind: kSingle, raw: s.raw})
	case lexer.IsLetter(ch) || ch == ':':
		end := sc.Pos + 1
		for end < len(sc.Src) && (lexer.IsLetterOrDigit(sc.Src[end]) || strings.ContainsRune("-:.", sc.Src[end])) {
			end++
		}
		sc.Emit(token.MarkupAttribute, end)
	case tm.html && !strings.ContainsRune("<\"'`=", ch):
		end := sc.Pos + 1
		for end < len(sc.Src) && !unicode.IsSpace(sc.Src[end]) && !strings.ContainsRune(">\"'`=<", sc.Src[end]) {
			end++
		}
		sc.Emit(token.MarkupAttributeValue, end)
	default:
		sc.EmitN(token.Error, 1)
	}
	return s
}

// value tokenizes a quoted attribute value from pos, which is after
// the opening quote if there is one on this line.
func (tm *TokenMaker) value(sc *lexer.Scanner, pos int, s state) state {
	q := `"`
	if s.kind == kSingle {
		q = "'"
	}
	e := sc.Index(pos, q)
	if e < 0 {
		sc.EmitRest(token.MarkupAttributeValue)
		return s
	}
	sc.Emit(token.MarkupAttributeValue, e+1)
	return state{kind: kTag, raw: s.raw}
}

func (tm *TokenMaker) inner(raw int) lexer.TokenMaker {
	if raw == rawScript {
		return tm.script
	}
	return tm.style
}

// rawText tokenizes the contents of a raw element up to its end tag
// or the end of the line.
func (tm *TokenMaker) rawText(sc *lexer.Scanner, s state) state {
	end := "</script"
	if s.raw == rawStyle {
		end = "</style"
	}
	e := indexFold(sc.Src, sc.Pos, end)
	found := e >= 0
	if !found {
		e = len(sc.Src)
	}
	toks, ex := tm.inner(s.raw).Tokenize(sc.Src[sc.Pos:e], s.inner, nil)
	for _, lx := range toks {
		sc.Out.Add(lx.Token, lx.Start+sc.Pos, lx.End+sc.Pos)
	}
	sc.Pos = e
	if found {
		return state{}
	}
	return state{kind: kText, raw: s.raw, inner: ex}
}

// indexFold returns the first position at or after pos where src
// starts with s, ignoring case, or -1.
func indexFold(src []rune, pos int, s string) int {
	for i := max(pos, 0); i < len(src); i++ {
		if hasPrefixFold(src, i, s) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(src []rune, pos int, s string) bool {
	for _, r := range s {
		if pos >= len(src) || unicode.ToLower(src[pos]) != r {
			return false
		}
		pos++
	}
	return true
}

// NewXMLFoldParser returns the fold parser for XML, which folds
// elements, comments and CDATA sections.
func NewXMLFoldParser() folding.Parser {
	return &folding.MarkupParser{}
}

// NewHTMLFoldParser returns the fold parser for HTML, which also
// folds the blocks of scripts and style sheets.
func NewHTMLFoldParser() folding.Parser {
	return folding.ChainParser{
		&folding.MarkupParser{Void: folding.HTMLVoid, IgnoreCase: true},
		&folding.CurlyParser{},
	}
}
