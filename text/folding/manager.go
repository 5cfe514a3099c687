// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folding

import (
	"slices"

	"cogentcore.org/lexfold/text/lexer"
	"cogentcore.org/lexfold/text/lines"
	"cogentcore.org/lexfold/text/syntax"
)

// Buffer is the text buffer holding the fold anchors,
// which is satisfied by [lines.Lines].
type Buffer interface {
	NumLines() int
	Line(ln int) []rune
	LineStart(ln int) int
	LineOf(off int) int
	NewMark(off int) lines.Mark
	MarkOffset(m lines.Mark) int
	MoveMark(m lines.Mark, off int)
	DeleteMark(m lines.Mark)
}

// Source provides the tokens and lexical states of each line,
// which is satisfied by [syntax.Engine].
type Source interface {
	Tokens(ln int) lexer.Line
	EnterState(ln int) lexer.State
	ExitState(ln int) lexer.State
	DefaultState() lexer.State
}

// Manager maintains the tree of folds of one document. It caches the
// boundaries of every line, and after each edit only re-parses the lines
// that were re-tokenized. The fold tree is only rebuilt when the number of
// lines or the boundaries of those lines changed: otherwise the folds keep
// tracking the text through their marks, with the marks of boundaries on
// the re-parsed lines moved to their new columns.
//
// Like the rest of the document, the Manager is single-threaded.
type Manager struct {
	buf    Buffer
	src    Source
	parser Parser

	enabled bool

	// bounds are the boundaries of each line.
	bounds [][]Boundary

	// folds are the top level folds.
	folds []*Fold

	// all are all folds in document order.
	all []*Fold

	// hidden are the line ranges hidden by the outermost collapsed folds,
	// in order, computed as needed. nil if not current.
	hidden []hiddenRange

	// rebuilds counts the fold tree builds.
	rebuilds int
}

// hiddenRange is a range of hidden lines, from after start through end.
type hiddenRange struct {
	start, end int
}

// NewManager returns a new Manager for the given buffer, token source and
// fold parser, with folding enabled and all folds built. A nil parser
// disables folding.
func NewManager(buf Buffer, src Source, p Parser) *Manager {
	m := &Manager{buf: buf, src: src, parser: p, enabled: true}
	m.Rebuild()
	return m
}

// Parser returns the current fold parser.
func (m *Manager) Parser() Parser {
	return m.parser
}

// SetParser sets the fold parser, for a change of language,
// and rebuilds all folds. Collapsed folds stay collapsed where
// the new parser finds the same folds.
func (m *Manager) SetParser(p Parser) {
	m.parser = p
	m.Rebuild()
}

// Enabled returns whether folding is enabled.
func (m *Manager) Enabled() bool {
	return m.enabled && m.parser != nil
}

// SetEnabled turns folding on or off. Turning it off discards all folds.
func (m *Manager) SetEnabled(on bool) {
	if on == m.enabled {
		return
	}
	m.enabled = on
	m.Rebuild()
}

// Rebuilds returns the number of times the fold tree has been built.
func (m *Manager) Rebuilds() int {
	return m.rebuilds
}

// Rebuild re-parses all lines and rebuilds all folds.
func (m *Manager) Rebuild() {
	if !m.Enabled() {
		m.clear()
		m.bounds = nil
		return
	}
	n := m.buf.NumLines()
	m.bounds = slices.Grow(m.bounds[:0], n)[:n]
	for ln := range n {
		m.bounds[ln] = m.parseLine(ln, m.bounds[ln])
	}
	m.build()
}

// Update updates the folds after the given lines were re-tokenized
// following an edit, returning true if the fold tree was rebuilt.
func (m *Manager) Update(rx syntax.Relex) bool {
	m.hidden = nil
	if !m.Enabled() {
		return false
	}
	n := m.buf.NumLines()
	if rx.Full || len(m.bounds)+rx.LineDelta != n || rx.First < 0 || rx.Last >= n {
		m.Rebuild()
		return true
	}
	switch {
	case rx.LineDelta > 0:
		m.bounds = slices.Insert(m.bounds, rx.First+1, make([][]Boundary, rx.LineDelta)...)
	case rx.LineDelta < 0:
		m.bounds = slices.Delete(m.bounds, rx.First+1, rx.First+1-rx.LineDelta)
	}
	changed := rx.LineDelta != 0
	var nb []Boundary
	for ln := rx.First; ln <= rx.Last; ln++ {
		nb = m.parseLine(ln, nb[:0])
		if !changed && !sameBoundaries(m.bounds[ln], nb) {
			changed = true
		}
		m.bounds[ln] = append(m.bounds[ln][:0], nb...)
	}
	if changed {
		m.build()
	} else {
		m.reanchor(rx.First, rx.Last)
	}
	return changed
}

// parseLine returns the boundaries of the given line.
func (m *Manager) parseLine(ln int, dst []Boundary) []Boundary {
	def := m.src.DefaultState()
	fl := Line{
		Number:     ln,
		Src:        m.buf.Line(ln),
		Tokens:     m.src.Tokens(ln),
		Continues:  m.src.EnterState(ln) != def,
		LeavesOpen: m.src.ExitState(ln) != def,
	}
	return m.parser.Boundaries(fl, dst[:0])
}

// sameBoundaries returns whether two lines have the same sequence of
// boundaries, regardless of columns.
func sameBoundaries(a, b []Boundary) bool {
	return slices.EqualFunc(a, b, func(x, y Boundary) bool {
		return x.Kind == y.Kind && x.Type == y.Type && x.Key == y.Key
	})
}

// reanchor moves the marks of the fold boundaries on lines first through
// last to the current columns of those boundaries, which have only moved
// within their lines.
func (m *Manager) reanchor(first, last int) {
	move := func(mk lines.Mark, at boundaryRef) {
		if at.line >= first && at.line <= last {
			m.buf.MoveMark(mk, m.buf.LineStart(at.line)+m.bounds[at.line][at.idx].Col)
		}
	}
	for _, f := range m.all {
		move(f.start, f.startAt)
		move(f.end, f.endAt)
	}
}

// clear discards all folds.
func (m *Manager) clear() {
	for _, f := range m.all {
		m.buf.DeleteMark(f.start)
		m.buf.DeleteMark(f.end)
		f.mgr = nil
		f.parent = nil
		f.children = nil
	}
	m.folds = nil
	m.all = nil
	m.hidden = nil
}

// boundaryRef is the location of a boundary in the line cache.
type boundaryRef struct {
	line, idx int
}

// openEntry is an Open boundary on the stack while building.
type openEntry struct {
	off      int
	at       boundaryRef
	b        Boundary
	children []*Fold
}

// foldKey identifies a fold across rebuilds.
type foldKey struct {
	start int
	typ   FoldTypes
}

// build rebuilds the fold tree from the cached boundaries, pairing
// them with a stack. A Close with a Key closes the nearest Open with the
// same Key, discarding any Opens above it; a Close without a Key only
// closes an Open without a Key and of the same type at the top of the
// stack. Other Closes are ignored, as are Opens still unmatched at the
// end. The folds within a discarded Open move up to its parent.
// A pair on a single line makes no fold.
func (m *Manager) build() {
	collapsed := map[foldKey]bool{}
	for _, f := range m.all {
		if f.collapsed {
			collapsed[foldKey{f.Start(), f.Type}] = true
		}
	}
	m.clear()
	m.rebuilds++

	var stack []openEntry
	var top []*Fold
	adopt := func(fs ...*Fold) {
		if len(stack) == 0 {
			top = append(top, fs...)
			return
		}
		e := &stack[len(stack)-1]
		e.children = append(e.children, fs...)
	}
	for ln, bs := range m.bounds {
		lst := m.buf.LineStart(ln)
		for bi, b := range bs {
			off := lst + b.Col
			at := boundaryRef{ln, bi}
			if b.Kind == Open {
				stack = append(stack, openEntry{off: off, at: at, b: b})
				continue
			}
			idx := m.matchClose(stack, b)
			if idx < 0 {
				continue
			}
			for len(stack) > idx+1 {
				e := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				adopt(e.children...)
			}
			e := stack[idx]
			stack = stack[:idx]
			if f := m.newFold(e, off, at, collapsed); f != nil {
				adopt(f)
			} else {
				adopt(e.children...)
			}
		}
	}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		adopt(e.children...)
	}
	m.folds = top
	walk(m.folds, func(f *Fold) bool {
		m.all = append(m.all, f)
		return true
	})
}

// matchClose returns the stack index of the Open closed by b, or -1.
func (m *Manager) matchClose(stack []openEntry, b Boundary) int {
	if b.Key == "" {
		i := len(stack) - 1
		if i >= 0 && stack[i].b.Key == "" && stack[i].b.Type == b.Type {
			return i
		}
		return -1
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].b.Key == b.Key {
			return i
		}
	}
	return -1
}

// newFold returns a new fold from the open entry to the end offset,
// or nil if it would not span more than one line.
func (m *Manager) newFold(e openEntry, end int, endAt boundaryRef, collapsed map[foldKey]bool) *Fold {
	if e.at.line >= endAt.line {
		return nil
	}
	f := &Fold{Type: e.b.Type, mgr: m, children: e.children, startAt: e.at, endAt: endAt}
	f.start = m.buf.NewMark(e.off)
	f.end = m.buf.NewMark(end)
	f.collapsed = collapsed[foldKey{e.off, e.b.Type}]
	for _, c := range f.children {
		c.parent = f
	}
	return f
}
