// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "cogentcore.org/lexfold/text/textpos"

// Mark is a stable handle to a document offset that is adjusted
// automatically whenever text is inserted or removed before it.
// An insertion exactly at the marked offset pushes the mark forward,
// and a mark inside removed text moves to the start of the removal.
type Mark int32

// markTable holds the current offset of each mark, indexed by [Mark].
// Deleted entries have offset -1 and are recycled through free.
type markTable struct {
	offs []int
	free []Mark
}

func (mt *markTable) adjust(ed *textpos.Edit) {
	for i, off := range mt.offs {
		if off < 0 {
			continue
		}
		mt.offs[i] = ed.AdjustOffset(off, textpos.AdjustPosDelStart)
	}
}

// NewMark returns a new mark at the given document offset,
// clamped to the text.
func (ls *Lines) NewMark(off int) Mark {
	off = min(max(off, 0), ls.Len())
	mt := &ls.marks
	if n := len(mt.free); n > 0 {
		m := mt.free[n-1]
		mt.free = mt.free[:n-1]
		mt.offs[m] = off
		return m
	}
	mt.offs = append(mt.offs, off)
	return Mark(len(mt.offs) - 1)
}

// MarkOffset returns the current document offset of the mark,
// or -1 if it is not a valid mark.
func (ls *Lines) MarkOffset(m Mark) int {
	if m < 0 || int(m) >= len(ls.marks.offs) {
		return -1
	}
	return ls.marks.offs[m]
}

// MarkLine returns the line containing the mark, or -1 if it is not valid.
func (ls *Lines) MarkLine(m Mark) int {
	off := ls.MarkOffset(m)
	if off < 0 {
		return -1
	}
	return ls.LineOf(off)
}

// DeleteMark releases the mark for reuse.
func (ls *Lines) DeleteMark(m Mark) {
	if m < 0 || int(m) >= len(ls.marks.offs) || ls.marks.offs[m] < 0 {
		return
	}
	ls.marks.offs[m] = -1
	ls.marks.free = append(ls.marks.free, m)
}

// NumMarks returns the number of live marks.
func (ls *Lines) NumMarks() int {
	return len(ls.marks.offs) - len(ls.marks.free)
}

// MoveMark moves the mark to the given document offset, clamped to the
// text, for an owner that knows a better position than the adjusted one.
func (ls *Lines) MoveMark(m Mark, off int) {
	if ls.MarkOffset(m) < 0 {
		return
	}
	ls.marks.offs[m] = min(max(off, 0), ls.Len())
}
