// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package languages is the registry of supported languages: their
// names, the files they are used for, and the constructors of their
// TokenMakers and fold parsers.
package languages

import (
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages/chromalex"
	"cogentcore.org/lexfold/text/lexer"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/go-enry/go-enry/v2"
	"github.com/gobwas/glob"
)

// Support is the support for one language.
type Support struct {

	// Name is the name of the language, such as Go.
	Name string

	// Aliases are other names that the language is known by,
	// such as golang.
	Aliases []string

	// Extensions are the file name extensions of the language,
	// including the dot, such as .go.
	Extensions []string

	// Globs are patterns for the base names of files in the language
	// that have no distinctive extension, such as Makefile or .bashrc.
	Globs []string

	// NewTokenMaker returns a new TokenMaker for the language.
	NewTokenMaker func() lexer.TokenMaker

	// NewFoldParser returns a new fold parser for the language,
	// or is nil if it does not support folding.
	NewFoldParser func() folding.Parser

	// Fallback is whether the support was made on demand for
	// a chroma lexer, rather than registered.
	Fallback bool

	globs []glob.Glob
}

// FoldParser returns a new fold parser, or nil if the language does
// not support folding.
func (s *Support) FoldParser() folding.Parser {
	if s.NewFoldParser == nil {
		return nil
	}
	return s.NewFoldParser()
}

// compileGlobs compiles file name patterns.
func compileGlobs(name string, pats []string) ([]glob.Glob, error) {
	gs := make([]glob.Glob, len(pats))
	for i, pat := range pats {
		g, err := glob.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("languages: %s: bad file name pattern %q: %w", name, pat, err)
		}
		gs[i] = g
	}
	return gs, nil
}

// UnknownLanguageError is the error for a language name that is not
// registered, with the registered names most similar to it.
type UnknownLanguageError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownLanguageError) Error() string {
	msg := fmt.Sprintf("languages: unknown language %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += "; did you mean " + strings.Join(e.Suggestions, " or ") + "?"
	}
	return msg
}

// Registry is a set of supported languages. A Registry is not safe
// for concurrent modification.
type Registry struct {

	// Chroma is whether [Registry.Lookup] and [Registry.Detect] fall
	// back on chroma lexers for languages that are not registered.
	Chroma bool

	langs  []*Support
	byName map[string]*Support
	byExt  map[string]*Support
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Support{}, byExt: map[string]*Support{}}
}

// Register adds the support for a language. It is an error for its
// name or any alias to be registered already. Extensions that are
// already registered are taken over by the new language.
func (r *Registry) Register(s *Support) error {
	if s.Name == "" || s.NewTokenMaker == nil {
		return fmt.Errorf("languages: support must have a name and a NewTokenMaker")
	}
	names := append([]string{s.Name}, s.Aliases...)
	for _, nm := range names {
		if _, ok := r.byName[strings.ToLower(nm)]; ok {
			return fmt.Errorf("languages: %q is already registered", nm)
		}
	}
	gs, err := compileGlobs(s.Name, s.Globs)
	if err != nil {
		return err
	}
	s.globs = gs
	for _, nm := range names {
		r.byName[strings.ToLower(nm)] = s
	}
	for _, ext := range s.Extensions {
		r.byExt[strings.ToLower(ext)] = s
	}
	r.langs = append(r.langs, s)
	return nil
}

// AddGlobs adds file name patterns to a registered language.
func (r *Registry) AddGlobs(name string, globs ...string) error {
	s, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return r.unknown(name)
	}
	gs, err := compileGlobs(s.Name, globs)
	if err != nil {
		return err
	}
	s.Globs = append(slices.Clone(s.Globs), globs...)
	s.globs = append(s.globs, gs...)
	return nil
}

// Lookup returns the language with the given name or alias, ignoring
// case. If there is none, it returns a chroma language if
// [Registry.Chroma] is set and chroma has a lexer of that name, and
// otherwise an [UnknownLanguageError].
func (r *Registry) Lookup(name string) (*Support, error) {
	if s, ok := r.byName[strings.ToLower(name)]; ok {
		return s, nil
	}
	if r.Chroma {
		if tm, ok := chromalex.New(name); ok {
			return chromaSupport(tm), nil
		}
	}
	return nil, r.unknown(name)
}

// unknown returns the error for an unknown name, with suggestions.
func (r *Registry) unknown(name string) error {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	scores := map[string]float64{}
	for key, s := range r.byName {
		if sc := strutil.Similarity(name, key, jw); sc >= 0.75 {
			scores[s.Name] = max(scores[s.Name], sc)
		}
	}
	cands := slices.Collect(maps.Keys(scores))
	sort.Slice(cands, func(i, j int) bool {
		si, sj := scores[cands[i]], scores[cands[j]]
		if si != sj {
			return si > sj
		}
		return cands[i] < cands[j]
	})
	err := &UnknownLanguageError{Name: name}
	if len(cands) > 3 {
		cands = cands[:3]
	}
	err.Suggestions = cands
	return err
}

// ForFilename returns the registered language for the given file name,
// by its extension and then by the file name patterns.
func (r *Registry) ForFilename(fname string) (*Support, bool) {
	base := filepath.Base(fname)
	if s, ok := r.byExt[strings.ToLower(filepath.Ext(base))]; ok {
		return s, true
	}
	for _, s := range r.langs {
		for _, g := range s.globs {
			if g.Match(base) {
				return s, true
			}
		}
	}
	return nil, false
}

// Detect returns the language for a file with the given name and
// content: by file name, then by the language that enry detects, then
// by a chroma lexer if [Registry.Chroma] is set, and otherwise plain text.
func (r *Registry) Detect(filename string, content []byte) *Support {
	if s, ok := r.ForFilename(filename); ok {
		return s
	}
	if name := enry.GetLanguage(filepath.Base(filename), content); name != "" {
		if s, err := r.Lookup(name); err == nil {
			slog.Debug("languages: detected by enry", "file", filename, "language", s.Name)
			return s
		}
	}
	if r.Chroma {
		tm, ok := chromalex.Match(filename)
		if !ok {
			tm, ok = chromalex.Analyse(string(content))
		}
		if ok {
			slog.Debug("languages: detected by chroma", "file", filename, "language", tm.Name())
			return chromaSupport(tm)
		}
	}
	s, err := r.Lookup(PlainName)
	if err != nil {
		return plainSupport()
	}
	return s
}

// Names returns the sorted names of the registered languages.
func (r *Registry) Names() []string {
	names := make([]string, len(r.langs))
	for i, s := range r.langs {
		names[i] = s.Name
	}
	slices.Sort(names)
	return names
}

// Languages returns the registered languages, in order of registration.
func (r *Registry) Languages() []*Support {
	return r.langs
}

// chromaSupport returns the support for a chroma TokenMaker,
// which is stateless and so shared by all documents.
func chromaSupport(tm *chromalex.TokenMaker) *Support {
	return &Support{
		Name:          tm.Name(),
		NewTokenMaker: func() lexer.TokenMaker { return tm },
		NewFoldParser: chromalex.NewFoldParser,
		Fallback:      true,
	}
}
