// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/token"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// newOutput returns the terminal output for w in the given color mode.
func newOutput(w io.Writer, mode string) (*termenv.Output, error) {
	switch mode {
	case "", colorAuto:
		return termenv.NewOutput(w), nil
	case colorAlways:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256)), nil
	case colorNever:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)), nil
	}
	return nil, fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
}

// categoryColors are the ANSI 256 colors of the token categories.
var categoryColors = map[token.Tokens]string{
	token.Error:        "9",
	token.Keyword:      "13",
	token.Name:         "",
	token.Literal:      "11",
	token.Comment:      "8",
	token.Operator:     "14",
	token.Punctuation:  "7",
	token.Preprocessor: "5",
	token.Markup:       "12",
}

// subColors override the category color for some token types.
var subColors = map[token.Tokens]string{
	token.NameFunction:  "12",
	token.NameBuiltin:   "6",
	token.KeywordType:   "10",
	token.LitStr:        "2",
	token.LitNum:        "3",
	token.MarkupTagName: "4",
	token.MarkupHeading: "13",
}

// tokenColor returns the color for the token type, or "" for none.
func tokenColor(tok token.Tokens) string {
	if c, ok := subColors[tok]; ok {
		return c
	}
	if c, ok := subColors[tok.SubCat()]; ok {
		return c
	}
	return categoryColors[tok.Cat()]
}

// styled returns s styled for the token type.
func styled(out *termenv.Output, tok token.Tokens, s string) string {
	c := tokenColor(tok)
	if c == "" {
		return s
	}
	st := out.String(s).Foreground(out.Color(c))
	if tok.IsComment() {
		st = st.Italic()
	}
	return st.String()
}

// foldColors are the colors of the fold types.
var foldColors = [folding.FoldTypesN]string{
	folding.FoldCode:    "4",
	folding.FoldComment: "8",
	folding.FoldImports: "6",
	folding.FoldMarkup:  "12",
	folding.FoldSection: "13",
}

// foldLabel returns the styled label of the fold type.
func foldLabel(out *termenv.Output, ft folding.FoldTypes) string {
	return out.String(ft.String()).Foreground(out.Color(foldColors[ft])).Bold().String()
}
