// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines a complete set of the lexical token types
// produced by the tokenizers for every supported language.
// It is based on the pygments / chroma token categories, with the
// additional markup and error types needed by an editor.
//
// There are categories and sub-categories, and methods to get those
// from a given element. The first category is 'None'.
package token

// Tokens is a complete set of lexical token types that encompasses
// all programming and text markup languages.
type Tokens int32

// The list of tokens. A category is the first token of each group,
// and all tokens up to the next category belong to it.
const (
	// None is the null token, used as the sentinel at the end of a line.
	None Tokens = iota

	// Error is an input that could not be tokenized.
	Error
	ErrorIdentifier
	ErrorNumber
	ErrorString
	ErrorChar

	// Keyword is a reserved word of the language.
	Keyword
	KeywordReserved
	KeywordType
	KeywordConstant
	KeywordFunction

	// Name is an identifier.
	Name
	NameFunction
	NameBuiltin
	NameVariable
	NameAnnotation
	NameLabel

	// Literal is a literal value.
	Literal
	LitStr
	LitStrDouble
	LitStrSingle
	LitStrChar
	LitStrBacktick
	LitStrHeredoc
	LitStrRegex
	LitNum
	LitNumInteger
	LitNumFloat
	LitNumHex

	// Comment is commentary, which is ignored by the language.
	Comment
	CommentSingle
	CommentMultiline
	CommentDoc
	CommentMarkup
	CommentTodo

	// Operator is a mathematical or logical operator.
	Operator

	// Punctuation is a separator or grouping character.
	Punctuation
	PunctGroup
	PunctSep

	// Preprocessor is a preprocessor directive line.
	Preprocessor

	// Markup is the content of markup languages.
	Markup
	MarkupTagDelimiter
	MarkupTagName
	MarkupAttribute
	MarkupAttributeValue
	MarkupComment
	MarkupDTD
	MarkupEntity
	MarkupCData
	MarkupProcessingInstruction
	MarkupHeading
	MarkupEmphasis
	MarkupCode
	MarkupLink

	// Text is plain text.
	Text
	TextWhitespace

	// TokensN is the number of token types.
	TokensN
)

var tokenNames = [...]string{
	None:                        "None",
	Error:                       "Error",
	ErrorIdentifier:             "ErrorIdentifier",
	ErrorNumber:                 "ErrorNumber",
	ErrorString:                 "ErrorString",
	ErrorChar:                   "ErrorChar",
	Keyword:                     "Keyword",
	KeywordReserved:             "KeywordReserved",
	KeywordType:                 "KeywordType",
	KeywordConstant:             "KeywordConstant",
	KeywordFunction:             "KeywordFunction",
	Name:                        "Name",
	NameFunction:                "NameFunction",
	NameBuiltin:                 "NameBuiltin",
	NameVariable:                "NameVariable",
	NameAnnotation:              "NameAnnotation",
	NameLabel:                   "NameLabel",
	Literal:                     "Literal",
	LitStr:                      "LitStr",
	LitStrDouble:                "LitStrDouble",
	LitStrSingle:                "LitStrSingle",
	LitStrChar:                  "LitStrChar",
	LitStrBacktick:              "LitStrBacktick",
	LitStrHeredoc:               "LitStrHeredoc",
	LitStrRegex:                 "LitStrRegex",
	LitNum:                      "LitNum",
	LitNumInteger:               "LitNumInteger",
	LitNumFloat:                 "LitNumFloat",
	LitNumHex:                   "LitNumHex",
	Comment:                     "Comment",
	CommentSingle:               "CommentSingle",
	CommentMultiline:            "CommentMultiline",
	CommentDoc:                  "CommentDoc",
	CommentMarkup:               "CommentMarkup",
	CommentTodo:                 "CommentTodo",
	Operator:                    "Operator",
	Punctuation:                 "Punctuation",
	PunctGroup:                  "PunctGroup",
	PunctSep:                    "PunctSep",
	Preprocessor:                "Preprocessor",
	Markup:                      "Markup",
	MarkupTagDelimiter:          "MarkupTagDelimiter",
	MarkupTagName:               "MarkupTagName",
	MarkupAttribute:             "MarkupAttribute",
	MarkupAttributeValue:        "MarkupAttributeValue",
	MarkupComment:               "MarkupComment",
	MarkupDTD:                   "MarkupDTD",
	MarkupEntity:                "MarkupEntity",
	MarkupCData:                 "MarkupCData",
	MarkupProcessingInstruction: "MarkupProcessingInstruction",
	MarkupHeading:               "MarkupHeading",
	MarkupEmphasis:              "MarkupEmphasis",
	MarkupCode:                  "MarkupCode",
	MarkupLink:                  "MarkupLink",
	Text:                        "Text",
	TextWhitespace:              "TextWhitespace",
}

// categories are the category heads, in increasing order.
var categories = []Tokens{None, Error, Keyword, Name, Literal, Comment, Operator, Punctuation, Preprocessor, Markup, Text}

// subCategories are the sub-category heads within the Literal category.
var subCategories = []Tokens{LitStr, LitNum}

// String returns the name of the token type.
func (tk Tokens) String() string {
	if tk < 0 || tk >= TokensN {
		return "Tokens(invalid)"
	}
	return tokenNames[tk]
}

// Cat returns the category that a given token lives in.
func (tk Tokens) Cat() Tokens {
	cat := None
	for _, c := range categories {
		if c > tk {
			break
		}
		cat = c
	}
	return cat
}

// SubCat returns the sub-category that a given token lives in,
// which is the category itself for tokens without a sub-category.
func (tk Tokens) SubCat() Tokens {
	for i := len(subCategories) - 1; i >= 0; i-- {
		sc := subCategories[i]
		if tk >= sc && sc.Cat() == tk.Cat() {
			return sc
		}
	}
	return tk.Cat()
}

// InCat returns true if the token is in the given category,
// or is the category itself.
func (tk Tokens) InCat(cat Tokens) bool {
	return tk.Cat() == cat
}

// IsComment returns true for all comment tokens, including markup comments.
func (tk Tokens) IsComment() bool {
	return tk.Cat() == Comment || tk == MarkupComment
}

// IsString returns true for all string literal tokens.
func (tk Tokens) IsString() bool {
	return tk.SubCat() == LitStr
}

// IsError returns true for the error tokens.
func (tk Tokens) IsError() bool {
	return tk.Cat() == Error
}

// IsWhitespace returns true for whitespace.
func (tk Tokens) IsWhitespace() bool {
	return tk == TextWhitespace
}

// IsKeyword returns true if this in the Keyword category.
func (tk Tokens) IsKeyword() bool {
	return tk.Cat() == Keyword
}

// TokensValues returns all of the token types, except None and TokensN.
func TokensValues() []Tokens {
	vals := make([]Tokens, 0, TokensN-1)
	for tk := None + 1; tk < TokensN; tk++ {
		vals = append(vals, tk)
	}
	return vals
}
