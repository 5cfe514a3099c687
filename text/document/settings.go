// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

// Settings are the settings of a [Document].
type Settings struct {

	// Language is the name of the language of the document. If it is
	// empty, the language is detected from the file name and content.
	Language string `toml:"language" yaml:"language"`

	// Folding is whether code folding is enabled.
	Folding bool `toml:"folding" yaml:"folding"`

	// ChromaFallback is whether to use chroma lexers for languages
	// that have no TokenMaker of their own.
	ChromaFallback bool `toml:"chroma_fallback" yaml:"chroma_fallback"`

	// MaxFoldLines turns folding off for documents with more lines
	// than this, if it is positive.
	MaxFoldLines int `toml:"max_fold_lines" yaml:"max_fold_lines"`
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.Folding = true
	s.ChromaFallback = true
	s.MaxFoldLines = 100_000
}

// foldingFor returns whether folding is on for the given number of lines.
func (s *Settings) foldingFor(nlines int) bool {
	return s.Folding && (s.MaxFoldLines <= 0 || nlines <= s.MaxFoldLines)
}
