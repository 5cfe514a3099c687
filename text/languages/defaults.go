// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package languages

import (
	"cogentcore.org/lexfold/base/errors"
	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages/cfamily"
	"cogentcore.org/lexfold/text/languages/css"
	"cogentcore.org/lexfold/text/languages/golang"
	"cogentcore.org/lexfold/text/languages/markdown"
	"cogentcore.org/lexfold/text/languages/plain"
	"cogentcore.org/lexfold/text/languages/python"
	"cogentcore.org/lexfold/text/languages/shell"
	"cogentcore.org/lexfold/text/languages/xml"
	"cogentcore.org/lexfold/text/lexer"
)

// PlainName is the name of the plain text language.
const PlainName = "Plain"

func plainSupport() *Support {
	return &Support{
		Name:          PlainName,
		Aliases:       []string{"text", "txt", "plaintext"},
		Extensions:    []string{".txt", ".text"},
		NewTokenMaker: plain.New,
	}
}

// cfamilySupport returns the support for a C family language.
func cfamilySupport(spec *cfamily.Spec, aliases []string, exts ...string) *Support {
	return &Support{
		Name:          spec.Name,
		Aliases:       aliases,
		Extensions:    exts,
		NewTokenMaker: func() lexer.TokenMaker { return cfamily.New(spec) },
		NewFoldParser: func() folding.Parser { return cfamily.NewFoldParser(spec) },
	}
}

// Builtin returns new supports for all of the built in languages.
func Builtin() []*Support {
	return []*Support{
		plainSupport(),
		{
			Name:          "Go",
			Aliases:       []string{"golang"},
			Extensions:    []string{".go"},
			NewTokenMaker: golang.New,
			NewFoldParser: golang.NewFoldParser,
		},
		{
			Name:          "Python",
			Aliases:       []string{"py", "python3"},
			Extensions:    []string{".py", ".pyw", ".pyi"},
			Globs:         []string{"SConstruct", "SConscript"},
			NewTokenMaker: python.New,
			NewFoldParser: python.NewFoldParser,
		},
		cfamilySupport(cfamily.C, nil, ".c", ".h"),
		cfamilySupport(cfamily.CPP, []string{"cpp", "cxx"}, ".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"),
		cfamilySupport(cfamily.Java, nil, ".java"),
		cfamilySupport(cfamily.JavaScript, []string{"js", "node"}, ".js", ".mjs", ".cjs"),
		cfamilySupport(cfamily.JSON, nil, ".json"),
		{
			Name:          "XML",
			Extensions:    []string{".xml", ".svg", ".xsd", ".xsl", ".xslt", ".plist"},
			NewTokenMaker: func() lexer.TokenMaker { return xml.NewXML() },
			NewFoldParser: xml.NewXMLFoldParser,
		},
		{
			Name:          "HTML",
			Aliases:       []string{"htm", "xhtml"},
			Extensions:    []string{".html", ".htm", ".xhtml"},
			NewTokenMaker: func() lexer.TokenMaker { return xml.NewHTML() },
			NewFoldParser: xml.NewHTMLFoldParser,
		},
		{
			Name:          "Shell",
			Aliases:       []string{"sh", "bash", "zsh", "shell script"},
			Extensions:    []string{".sh", ".bash", ".zsh"},
			Globs:         []string{".bashrc", ".zshrc", ".profile", ".bash_profile", "PKGBUILD"},
			NewTokenMaker: func() lexer.TokenMaker { return shell.New() },
			NewFoldParser: shell.NewFoldParser,
		},
		{
			Name:          "CSS",
			Extensions:    []string{".css"},
			NewTokenMaker: css.New,
			NewFoldParser: css.NewFoldParser,
		},
		{
			Name:          "Markdown",
			Aliases:       []string{"md"},
			Extensions:    []string{".md", ".markdown"},
			NewTokenMaker: markdown.New,
			NewFoldParser: markdown.NewFoldParser,
		},
	}
}

// Default returns a new registry with all of the built in languages,
// falling back on chroma for others.
func Default() *Registry {
	r := NewRegistry()
	r.Chroma = true
	for _, s := range Builtin() {
		errors.Must(r.Register(s))
	}
	return r
}
