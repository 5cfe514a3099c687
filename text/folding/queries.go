// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package folding

import (
	"fmt"
	"sort"

	"cogentcore.org/lexfold/base/errors"
)

// Folds returns the top level folds, in order.
// The slice must not be modified.
func (m *Manager) Folds() []*Fold {
	return m.folds
}

// Count returns the total number of folds.
func (m *Manager) Count() int {
	return len(m.all)
}

// All returns all folds in document order, with each fold before
// the folds within it. The slice must not be modified.
func (m *Manager) All() []*Fold {
	return m.all
}

// FoldForLine returns the outermost fold starting on the given line,
// or nil if there is none.
func (m *Manager) FoldForLine(ln int) *Fold {
	folds := m.folds
	for len(folds) > 0 {
		var in *Fold
		for _, f := range folds {
			sl := f.StartLine()
			if sl == ln {
				return f
			}
			if sl > ln {
				break
			}
			if f.EndLine() > ln {
				in = f
			}
		}
		if in == nil {
			return nil
		}
		folds = in.children
	}
	return nil
}

// DeepestFoldContaining returns the innermost fold containing the given
// document offset, per [Fold.ContainsOffset], or nil if there is none.
func (m *Manager) DeepestFoldContaining(off int) *Fold {
	return deepestContaining(m.folds, off, false)
}

// DeepestOpenFoldContaining returns the innermost expanded fold
// containing the given document offset that is not within a collapsed
// fold. It returns nil if the offset is in no fold, or within a
// collapsed top level fold.
func (m *Manager) DeepestOpenFoldContaining(off int) *Fold {
	return deepestContaining(m.folds, off, true)
}

// ToggleCollapsed toggles whether the fold is collapsed.
func (m *Manager) ToggleCollapsed(f *Fold) {
	m.SetCollapsed(f, !f.Collapsed())
}

// SetCollapsed sets whether the fold is collapsed, returning true if it
// changed. Folds of another manager, or discarded by a rebuild, are
// ignored.
func (m *Manager) SetCollapsed(f *Fold, collapsed bool) bool {
	if f == nil || f.mgr != m || f.collapsed == collapsed {
		return false
	}
	f.collapsed = collapsed
	m.hidden = nil
	return true
}

// setAll sets the collapsed state of all folds passing the filter,
// returning the number changed.
func (m *Manager) setAll(collapsed bool, filter func(f *Fold) bool) int {
	n := 0
	for _, f := range m.all {
		if filter(f) && m.SetCollapsed(f, collapsed) {
			n++
		}
	}
	return n
}

// CollapseAllOfType collapses all folds of the given type,
// returning the number collapsed.
func (m *Manager) CollapseAllOfType(typ FoldTypes) int {
	return m.setAll(true, func(f *Fold) bool { return f.Type == typ })
}

// ExpandAllOfType expands all folds of the given type,
// returning the number expanded.
func (m *Manager) ExpandAllOfType(typ FoldTypes) int {
	return m.setAll(false, func(f *Fold) bool { return f.Type == typ })
}

// CollapseAll collapses all folds, returning the number collapsed.
func (m *Manager) CollapseAll() int {
	return m.setAll(true, func(f *Fold) bool { return true })
}

// ExpandAll expands all folds, returning the number expanded.
func (m *Manager) ExpandAll() int {
	return m.setAll(false, func(f *Fold) bool { return true })
}

// hiddenRanges returns the line ranges hidden by the outermost collapsed
// folds. The ranges are in order and do not overlap, as sibling folds at
// most share a line, which the earlier one hides.
func (m *Manager) hiddenRanges() []hiddenRange {
	if m.hidden != nil {
		return m.hidden
	}
	m.hidden = []hiddenRange{}
	walk(m.folds, func(f *Fold) bool {
		if !f.collapsed {
			return true
		}
		if sl, el := f.StartLine(), f.EndLine(); el > sl {
			m.hidden = append(m.hidden, hiddenRange{sl, el})
		}
		return false
	})
	return m.hidden
}

// hiddenBy returns the hidden range containing the line, if any.
func (m *Manager) hiddenBy(ln int) (hiddenRange, bool) {
	hr := m.hiddenRanges()
	i := sort.Search(len(hr), func(i int) bool {
		return hr[i].end >= ln
	})
	if i < len(hr) && hr[i].start < ln {
		return hr[i], true
	}
	return hiddenRange{}, false
}

// IsLineHidden returns whether the line is hidden by a collapsed fold.
func (m *Manager) IsLineHidden(ln int) bool {
	_, hid := m.hiddenBy(ln)
	return hid
}

// HiddenLineCountAbove returns the number of lines before the given line
// that are hidden by collapsed folds. Each hidden line is counted once,
// however many collapsed folds contain it.
func (m *Manager) HiddenLineCountAbove(ln int) int {
	n := 0
	for _, hr := range m.hiddenRanges() {
		if hr.start+1 >= ln {
			break
		}
		n += min(hr.end, ln-1) - hr.start
	}
	return n
}

// HiddenLineCount returns the total number of hidden lines.
func (m *Manager) HiddenLineCount() int {
	n := 0
	for _, hr := range m.hiddenRanges() {
		n += hr.end - hr.start
	}
	return n
}

// VisibleLineBelow returns the first visible line after the given line,
// or -1 if there is none.
func (m *Manager) VisibleLineBelow(ln int) int {
	nl := m.buf.NumLines()
	next := ln + 1
	for next < nl {
		hr, hid := m.hiddenBy(next)
		if !hid {
			return next
		}
		next = max(hr.end, next) + 1
	}
	return -1
}

// VisibleLineAbove returns the last visible line before the given line,
// or -1 if there is none.
func (m *Manager) VisibleLineAbove(ln int) int {
	prev := ln - 1
	for prev >= 0 {
		hr, hid := m.hiddenBy(prev)
		if !hid {
			return prev
		}
		prev = min(hr.start, prev-1)
	}
	return -1
}

// Validate checks the structure of the fold tree: every fold spans more
// than one line and is within its parent, and sibling folds are in order
// and do not overlap, except that a fold may start on the line where
// the previous one ends.
func (m *Manager) Validate() error {
	var errs []error
	var check func(folds []*Fold, parent *Fold)
	check = func(folds []*Fold, parent *Fold) {
		prevEnd, prevLine := -1, -1
		for _, f := range folds {
			st, ed := f.Start(), f.End()
			sl, el := f.StartLine(), f.EndLine()
			switch {
			case f.mgr != m:
				errs = append(errs, fmt.Errorf("%v: not owned by the manager", f))
			case f.parent != parent:
				errs = append(errs, fmt.Errorf("%v: wrong parent", f))
			case sl >= el:
				errs = append(errs, fmt.Errorf("%v: spans no lines", f))
			case st <= prevEnd || sl < prevLine:
				errs = append(errs, fmt.Errorf("%v: overlaps the previous fold", f))
			case parent != nil && (st <= parent.Start() || ed >= parent.End()):
				errs = append(errs, fmt.Errorf("%v: not within %v", f, parent))
			}
			prevEnd, prevLine = ed, el
			check(f.children, f)
		}
	}
	check(m.folds, nil)
	return errors.Join(errs...)
}
