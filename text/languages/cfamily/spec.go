// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfamily provides the TokenMaker and fold parsers for the
// languages with C style syntax: C, C++, Java, JavaScript and JSON.
// The languages differ only in their [Spec].
package cfamily

import (
	"slices"

	"cogentcore.org/lexfold/text/folding"
)

// Spec describes the lexical syntax of one C family language.
type Spec struct {

	// Name is the name of the language.
	Name string

	// Keywords are the reserved words.
	Keywords []string

	// Types are the names of builtin types.
	Types []string

	// Constants are the builtin constants, such as true.
	Constants []string

	// Builtins are the builtin functions and names.
	Builtins []string

	// LineComments is whether // starts a comment to the end of the line.
	LineComments bool

	// BlockComments is whether /* */ comments are used.
	BlockComments bool

	// DocComments is whether /** starts a documentation comment.
	DocComments bool

	// Preprocessor is whether # starts a preprocessor directive.
	Preprocessor bool

	// CharLiterals is whether single quotes delimit a character,
	// instead of a string.
	CharLiterals bool

	// SingleQuotes is whether single quotes delimit strings.
	SingleQuotes bool

	// Templates is whether backquotes delimit template literals,
	// which may span lines.
	Templates bool

	// Annotations is whether @ starts an annotation.
	Annotations bool

	// IdentExtra are the runes other than letters, digits and
	// underscore allowed in identifiers.
	IdentExtra string
}

// C is the C language.
var C = &Spec{
	Name: "C",
	Keywords: []string{"auto", "break", "case", "const", "continue", "default", "do", "else", "enum",
		"extern", "for", "goto", "if", "inline", "register", "restrict", "return", "sizeof",
		"static", "struct", "switch", "typedef", "union", "volatile", "while", "_Alignas",
		"_Alignof", "_Atomic", "_Generic", "_Noreturn", "_Static_assert", "_Thread_local"},
	Types: []string{"char", "double", "float", "int", "long", "short", "signed", "unsigned",
		"void", "_Bool", "_Complex", "bool", "size_t", "int8_t", "int16_t", "int32_t", "int64_t",
		"uint8_t", "uint16_t", "uint32_t", "uint64_t"},
	Constants:     []string{"NULL", "true", "false"},
	Builtins:      []string{"printf", "malloc", "free", "memcpy", "memset", "strlen"},
	LineComments:  true,
	BlockComments: true,
	Preprocessor:  true,
	CharLiterals:  true,
}

// CPP is the C++ language.
var CPP = &Spec{
	Name: "C++",
	Keywords: append(slices.Clone(C.Keywords), "alignas", "alignof", "catch", "class", "constexpr",
		"const_cast", "decltype", "delete", "dynamic_cast", "explicit", "export", "friend",
		"mutable", "namespace", "new", "noexcept", "operator", "private", "protected", "public",
		"reinterpret_cast", "static_assert", "static_cast", "template", "this", "throw", "try",
		"typeid", "typename", "using", "virtual", "override", "final", "co_await", "co_return",
		"co_yield", "concept", "requires"),
	Types:         append(slices.Clone(C.Types), "wchar_t", "char8_t", "char16_t", "char32_t", "auto"),
	Constants:     []string{"nullptr", "true", "false", "NULL"},
	Builtins:      []string{"std", "cout", "cin", "endl", "string", "vector", "map"},
	LineComments:  true,
	BlockComments: true,
	DocComments:   true,
	Preprocessor:  true,
	CharLiterals:  true,
}

// Java is the Java language.
var Java = &Spec{
	Name: "Java",
	Keywords: []string{"abstract", "assert", "break", "case", "catch", "class", "const", "continue",
		"default", "do", "else", "enum", "extends", "final", "finally", "for", "goto", "if",
		"implements", "import", "instanceof", "interface", "native", "new", "package", "permits",
		"private", "protected", "public", "record", "return", "sealed", "static", "strictfp",
		"super", "switch", "synchronized", "this", "throw", "throws", "transient", "try", "var",
		"void", "volatile", "while", "yield"},
	Types:         []string{"boolean", "byte", "char", "double", "float", "int", "long", "short", "String", "Object"},
	Constants:     []string{"true", "false", "null"},
	Builtins:      []string{"System", "Math", "Integer", "List", "Map"},
	LineComments:  true,
	BlockComments: true,
	DocComments:   true,
	CharLiterals:  true,
	Annotations:   true,
	IdentExtra:    "$",
}

// JavaScript is the JavaScript language.
var JavaScript = &Spec{
	Name: "JavaScript",
	Keywords: []string{"async", "await", "break", "case", "catch", "class", "const", "continue",
		"debugger", "default", "delete", "do", "else", "export", "extends", "finally", "for",
		"from", "function", "if", "import", "in", "instanceof", "let", "new", "of", "return",
		"static", "super", "switch", "this", "throw", "try", "typeof", "var", "void", "while",
		"with", "yield"},
	Constants:     []string{"true", "false", "null", "undefined", "NaN", "Infinity"},
	Builtins:      []string{"console", "window", "document", "Math", "JSON", "Object", "Array", "Promise", "require", "module"},
	LineComments:  true,
	BlockComments: true,
	DocComments:   true,
	SingleQuotes:  true,
	Templates:     true,
	IdentExtra:    "$",
}

// JSON is the JSON data format.
var JSON = &Spec{
	Name:      "JSON",
	Constants: []string{"true", "false", "null"},
}

// NewFoldParser returns the fold parser for the given language.
func NewFoldParser(spec *Spec) folding.Parser {
	cp := &folding.CurlyParser{
		Comments: spec.BlockComments,
		Regions:  spec.LineComments,
		Brackets: spec == JSON || spec == JavaScript,
	}
	if spec.Templates {
		return folding.ChainParser{cp, &folding.MultilineParser{Match: isTemplate, Type: folding.FoldCode}}
	}
	return cp
}
