// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folding

import (
	"fmt"

	"cogentcore.org/lexfold/text/lines"
)

// Fold is a collapsible region of lines. Its start and end are marks in
// the text buffer, so they move with edits made elsewhere. A Fold always
// spans at least two lines: lines StartLine+1 through EndLine are hidden
// when it is collapsed. Folds are created and changed only by their
// [Manager], and a Fold is no longer valid after the Manager rebuilds
// its folds, which makes [Fold.Valid] false.
type Fold struct {

	// Type is the type of fold.
	Type FoldTypes

	// start and end are the marks of the open and close boundaries.
	start, end lines.Mark

	// startAt and endAt locate the boundaries in the line cache.
	startAt, endAt boundaryRef

	collapsed bool

	parent   *Fold
	children []*Fold

	// mgr is the owning manager, nil once discarded.
	mgr *Manager
}

// Valid returns whether the fold is still part of its manager's tree.
func (f *Fold) Valid() bool {
	return f != nil && f.mgr != nil
}

// Start returns the document offset of the start of the fold,
// or -1 for an invalid fold.
func (f *Fold) Start() int {
	if !f.Valid() {
		return -1
	}
	return f.mgr.buf.MarkOffset(f.start)
}

// End returns the document offset of the end of the fold,
// or -1 for an invalid fold.
func (f *Fold) End() int {
	if !f.Valid() {
		return -1
	}
	return f.mgr.buf.MarkOffset(f.end)
}

// StartLine returns the first line of the fold, which stays visible
// when it is collapsed.
func (f *Fold) StartLine() int {
	if !f.Valid() {
		return -1
	}
	return f.mgr.buf.LineOf(f.Start())
}

// EndLine returns the last line of the fold.
func (f *Fold) EndLine() int {
	if !f.Valid() {
		return -1
	}
	return f.mgr.buf.LineOf(f.End())
}

// LineCount returns the number of lines hidden when the fold is collapsed.
func (f *Fold) LineCount() int {
	return f.EndLine() - f.StartLine()
}

// Collapsed returns whether the fold is collapsed.
func (f *Fold) Collapsed() bool {
	return f.collapsed
}

// Parent returns the enclosing fold, nil for a top level fold.
func (f *Fold) Parent() *Fold {
	return f.parent
}

// Children returns the folds directly within this one, in order.
// The slice must not be modified.
func (f *Fold) Children() []*Fold {
	return f.children
}

// Depth returns the nesting depth, 0 for a top level fold.
func (f *Fold) Depth() int {
	d := 0
	for p := f.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// ContainsLine returns whether the line is within the fold,
// including its start and end lines.
func (f *Fold) ContainsLine(ln int) bool {
	return ln >= f.StartLine() && ln <= f.EndLine()
}

// HidesLine returns whether the line is one of those hidden when the fold
// is collapsed, regardless of whether it is.
func (f *Fold) HidesLine(ln int) bool {
	return ln > f.StartLine() && ln <= f.EndLine()
}

// ContainsOffset returns whether the document offset is inside the fold:
// after its start, and no further than its end line.
func (f *Fold) ContainsOffset(off int) bool {
	if !f.Valid() {
		return false
	}
	return off > f.Start() && f.mgr.buf.LineOf(off) <= f.EndLine()
}

func (f *Fold) String() string {
	c := ""
	if f.collapsed {
		c = " collapsed"
	}
	return fmt.Sprintf("%v fold %d-%d%s", f.Type, f.StartLine(), f.EndLine(), c)
}

// deepestContaining returns the deepest fold in the list or their
// descendants that contains the offset. Where two sibling folds share a
// line, the later one is used. If open is set, the search stops at
// collapsed folds, and nil is returned if the containing fold in the
// list is itself collapsed.
func deepestContaining(folds []*Fold, off int, open bool) *Fold {
	var f *Fold
	for _, sf := range folds {
		if sf.ContainsOffset(off) {
			f = sf
		} else if f != nil {
			break
		}
	}
	if f == nil || (open && f.collapsed) {
		return nil
	}
	if d := deepestContaining(f.children, off, open); d != nil {
		return d
	}
	return f
}

// walk calls fun on the folds and their descendants in document order,
// only descending into a fold if fun returns true.
func walk(folds []*Fold, fun func(f *Fold) bool) {
	for _, f := range folds {
		if fun(f) {
			walk(f.children, fun)
		}
	}
}
