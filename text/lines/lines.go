// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides Lines, the mutable text buffer underlying a
// text document. Text is stored as lines of runes, and all document
// offsets count runes, with each line break counting as one rune.
// Edits are reported synchronously to OnEdit listeners, and [Mark]
// positions are adjusted automatically as part of every edit.
//
// Lines does no locking: it is owned by a single document and must only
// be read between edits.
package lines

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"cogentcore.org/lexfold/text/textpos"
)

// Lines is the text buffer: a sequence of lines of runes.
// There is always at least one (possibly empty) line.
type Lines struct {

	// lines are the rune content of each line, without line breaks.
	lines [][]rune

	// starts has the document offset of the start of each line.
	starts []int

	// marks are the self-adjusting positions.
	marks markTable

	// listeners are called after every edit.
	listeners []func(ed *textpos.Edit)
}

// New returns a new Lines with the given initial text.
func New(text string) *Lines {
	ls := &Lines{}
	ls.setText(text)
	return ls
}

// setText sets the text without any notification or mark updating.
func (ls *Lines) setText(text string) {
	ls.lines = splitLines(text)
	ls.starts = make([]int, len(ls.lines))
	ls.computeStarts(0)
}

// splitLines splits the text at line breaks into rune lines.
func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lns := make([][]rune, len(parts))
	for i, p := range parts {
		lns[i] = []rune(p)
	}
	return lns
}

// computeStarts recomputes line start offsets from line st onward.
func (ls *Lines) computeStarts(st int) {
	if st == 0 {
		ls.starts[0] = 0
		st = 1
	}
	for ln := st; ln < len(ls.lines); ln++ {
		ls.starts[ln] = ls.starts[ln-1] + len(ls.lines[ln-1]) + 1
	}
}

// NumLines returns the number of lines, which is always at least 1.
func (ls *Lines) NumLines() int {
	return len(ls.lines)
}

// Len returns the total length of the text in runes, including line breaks.
func (ls *Lines) Len() int {
	n := len(ls.lines)
	return ls.starts[n-1] + len(ls.lines[n-1])
}

// Line returns the runes of the given line, which must not be modified
// and are only valid until the next edit. Returns nil for an invalid line.
func (ls *Lines) Line(ln int) []rune {
	if ln < 0 || ln >= len(ls.lines) {
		return nil
	}
	return ls.lines[ln]
}

// LineString returns the given line as a string.
func (ls *Lines) LineString(ln int) string {
	return string(ls.Line(ln))
}

// LineLen returns the number of runes in the given line.
func (ls *Lines) LineLen(ln int) int {
	return len(ls.Line(ln))
}

// LineStart returns the document offset of the start of the given line.
func (ls *Lines) LineStart(ln int) int {
	ln = min(max(ln, 0), len(ls.lines)-1)
	return ls.starts[ln]
}

// LineEnd returns the document offset of the end of the given line,
// which is the offset of its line break, or the end of the document.
func (ls *Lines) LineEnd(ln int) int {
	ln = min(max(ln, 0), len(ls.lines)-1)
	return ls.starts[ln] + len(ls.lines[ln])
}

// LineOf returns the line containing the given document offset.
// Offsets out of range are clamped to the first or last line.
func (ls *Lines) LineOf(off int) int {
	if off <= 0 {
		return 0
	}
	ln := sort.Search(len(ls.starts), func(i int) bool {
		return ls.starts[i] > off
	})
	return ln - 1
}

// PosOf returns the line position for the given document offset,
// clamped to valid positions.
func (ls *Lines) PosOf(off int) textpos.Pos {
	ln := ls.LineOf(off)
	ch := min(max(off-ls.starts[ln], 0), len(ls.lines[ln]))
	return textpos.Pos{Line: ln, Char: ch}
}

// OffsetOf returns the document offset for the given line position,
// clamped to valid positions.
func (ls *Lines) OffsetOf(pos textpos.Pos) int {
	ln := min(max(pos.Line, 0), len(ls.lines)-1)
	ch := min(max(pos.Char, 0), len(ls.lines[ln]))
	return ls.starts[ln] + ch
}

// String returns the full text.
func (ls *Lines) String() string {
	var sb strings.Builder
	for ln, l := range ls.lines {
		if ln > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// Strings returns the text as one string per line.
func (ls *Lines) Strings() []string {
	s := make([]string, len(ls.lines))
	for ln, l := range ls.lines {
		s[ln] = string(l)
	}
	return s
}

// SetString replaces the entire text with the given text,
// as one edit.
func (ls *Lines) SetString(text string) *textpos.Edit {
	ed, _ := ls.Replace(0, ls.Len(), text)
	return ed
}

// Insert inserts the given text at the given document offset.
func (ls *Lines) Insert(off int, text string) (*textpos.Edit, error) {
	return ls.Replace(off, 0, text)
}

// Delete deletes n runes starting at the given document offset.
func (ls *Lines) Delete(off, n int) (*textpos.Edit, error) {
	return ls.Replace(off, n, "")
}

// Replace replaces n runes starting at the given document offset
// with the given text, updates all marks, and then calls the OnEdit
// listeners with the resulting edit. A no-op edit returns nil with
// no notification.
func (ls *Lines) Replace(off, n int, text string) (*textpos.Edit, error) {
	size := ls.Len()
	if off < 0 || n < 0 || off+n > size {
		return nil, fmt.Errorf("lines.Replace: edit at %d of %d runes is outside of text of %d runes", off, n, size)
	}
	if n == 0 && text == "" {
		return nil, nil
	}
	st := ls.PosOf(off)
	oe := ls.PosOf(off + n)
	ins := splitLines(text)
	k := len(ins) - 1
	prefix := ls.lines[st.Line][:st.Char]
	suffix := ls.lines[oe.Line][oe.Char:]
	nw := make([][]rune, len(ins))
	for i, p := range ins {
		var l []rune
		if i == 0 {
			l = append(l, prefix...)
		}
		l = append(l, p...)
		if i == k {
			l = append(l, suffix...)
		}
		nw[i] = l
	}
	ed := &textpos.Edit{Offset: off, Removed: n, Start: st, OldEnd: oe}
	ed.NewEnd.Line = st.Line + k
	if k == 0 {
		ed.NewEnd.Char = st.Char + len(ins[0])
	} else {
		ed.NewEnd.Char = len(ins[k])
	}
	for _, p := range ins {
		ed.Inserted += len(p)
	}
	ed.Inserted += k

	ls.lines = slices.Replace(ls.lines, st.Line, oe.Line+1, nw...)
	if dl := ed.LineDelta(); dl > 0 {
		ls.starts = slices.Insert(ls.starts, st.Line+1, make([]int, dl)...)
	} else if dl < 0 {
		ls.starts = slices.Delete(ls.starts, st.Line+1, st.Line+1-dl)
	}
	ls.computeStarts(st.Line)
	ls.marks.adjust(ed)
	ls.sendEdit(ed)
	return ed, nil
}
