// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document provides Document, which ties a text buffer to the
// incremental tokenizer and fold manager for its language, keeping
// both up to date through every edit.
package document

import (
	"log/slog"

	"cogentcore.org/lexfold/base/errors"
	"cogentcore.org/lexfold/text/folding"
	"cogentcore.org/lexfold/text/languages"
	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/syntax"
	"cogentcore.org/lexfold/text/textpos"
	"cogentcore.org/lexfold/text/token"
)

// Document is a text document in a language, with its tokens and folds.
// Each edit synchronously re-tokenizes the affected lines and then
// updates the folds, so that both are current once an edit returns.
// A Document is not safe for concurrent use.
type Document struct {
	reg      *languages.Registry
	settings Settings
	lang     *languages.Support
	lines    *lines.Lines
	engine   *syntax.Engine
	folds    *folding.Manager

	// listeners are called after each re-tokenization.
	listeners []func(rx syntax.Relex, rebuilt bool)
}

// New returns a new empty document using the given registry and
// settings. The language is Settings.Language, or plain text if it
// is empty or unknown.
func New(reg *languages.Registry, settings Settings) *Document {
	d := &Document{reg: reg, settings: settings}
	d.lang = d.lookup(settings.Language)
	d.lines = lines.New("")
	d.engine = syntax.NewEngine(d.lines, d.lang.NewTokenMaker())
	d.folds = folding.NewManager(d.lines, d.engine, d.lang.FoldParser())
	d.folds.SetEnabled(settings.foldingFor(d.lines.NumLines()))
	d.lines.OnEdit(d.onEdit)
	return d
}

// lookup returns the support for the named language, logging any
// error and using plain text instead.
func (d *Document) lookup(name string) *languages.Support {
	if name == "" {
		name = languages.PlainName
	}
	s, err := d.find(name)
	if errors.Log(err) == nil {
		return s
	}
	if s, err = d.find(languages.PlainName); err == nil {
		return s
	}
	return languages.Builtin()[0]
}

// find looks up a language, which can only be a chroma fallback
// if Settings.ChromaFallback is on.
func (d *Document) find(name string) (*languages.Support, error) {
	s, err := d.reg.Lookup(name)
	if err == nil && s.Fallback && !d.settings.ChromaFallback {
		return nil, &languages.UnknownLanguageError{Name: name}
	}
	return s, err
}

// Settings returns the settings.
func (d *Document) Settings() Settings {
	return d.settings
}

// Language returns the support for the language of the document.
func (d *Document) Language() *languages.Support {
	return d.lang
}

// SetLanguage sets the language of the document by name, and
// re-tokenizes and re-folds all of it.
func (d *Document) SetLanguage(name string) error {
	s, err := d.find(name)
	if err != nil {
		return err
	}
	d.setSupport(s)
	return nil
}

func (d *Document) setSupport(s *languages.Support) {
	slog.Debug("document: set language", "language", s.Name)
	d.lang = s
	rx := d.engine.SetTokenMaker(s.NewTokenMaker())
	d.folds.SetParser(s.FoldParser())
	d.send(rx, true)
}

// SetFile sets the text of the document to the content of a file.
// Unless Settings.Language is set, the language is detected from the
// file name and content.
func (d *Document) SetFile(filename string, content []byte) {
	if d.settings.Language == "" {
		s := d.reg.Detect(filename, content)
		if s.Fallback && !d.settings.ChromaFallback {
			s = d.lookup(languages.PlainName)
		}
		if s != d.lang {
			d.setSupport(s)
		}
	}
	d.SetText(string(content))
}

// SetText replaces all of the text.
func (d *Document) SetText(text string) {
	d.lines.SetString(text)
}

// Insert inserts text at the given document offset.
func (d *Document) Insert(off int, text string) error {
	_, err := d.lines.Insert(off, text)
	return err
}

// Delete deletes n runes at the given document offset.
func (d *Document) Delete(off, n int) error {
	_, err := d.lines.Delete(off, n)
	return err
}

// Replace replaces n runes at the given document offset with text.
func (d *Document) Replace(off, n int, text string) error {
	_, err := d.lines.Replace(off, n, text)
	return err
}

// onEdit updates the tokens and then the folds after an edit.
func (d *Document) onEdit(ed *textpos.Edit) {
	rx := d.engine.OnEdit(ed.Offset, ed.Removed, ed.Inserted)
	on := d.settings.foldingFor(d.lines.NumLines())
	rebuilt := false
	if on != d.folds.Enabled() && d.folds.Parser() != nil {
		d.folds.SetEnabled(on)
		rebuilt = true
	} else {
		rebuilt = d.folds.Update(rx)
	}
	d.send(rx, rebuilt)
}

// OnRelex adds a function that is called after each re-tokenization,
// with the lines that were re-tokenized and whether the fold tree was
// rebuilt.
func (d *Document) OnRelex(fun func(rx syntax.Relex, rebuilt bool)) {
	d.listeners = append(d.listeners, fun)
}

func (d *Document) send(rx syntax.Relex, rebuilt bool) {
	for _, fun := range d.listeners {
		fun(rx, rebuilt)
	}
}

// Text returns all of the text.
func (d *Document) Text() string {
	return d.lines.String()
}

// NumLines returns the number of lines.
func (d *Document) NumLines() int {
	return d.lines.NumLines()
}

// Lines returns the text buffer. Edits must be made through the
// Document or the returned Lines, which are equivalent.
func (d *Document) Lines() *lines.Lines {
	return d.lines
}

// Engine returns the tokenization engine.
func (d *Document) Engine() *syntax.Engine {
	return d.engine
}

// Folds returns the fold manager.
func (d *Document) Folds() *folding.Manager {
	return d.folds
}

// TokenListForLine returns a cursor at the first token of the given
// line, which is only valid until the next edit.
func (d *Document) TokenListForLine(ln int) lexer.Cursor {
	return d.engine.TokenListForLine(ln)
}

// TokensCopy returns a copy of the tokens of the given line,
// which remains valid after edits.
func (d *Document) TokensCopy(ln int) lexer.Line {
	return d.engine.Tokens(ln).Clone()
}

// LastTokenTypeOnLine returns the type of the last token on the
// given line, or [token.None] if it has none.
func (d *Document) LastTokenTypeOnLine(ln int) token.Tokens {
	return d.engine.LastTokenTypeOnLine(ln)
}
