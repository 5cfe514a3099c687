// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "fmt"

// Edit describes one edit applied to line-based text: Removed runes
// were deleted starting at Offset, and then Inserted runes were
// inserted there. Offsets count runes, with each line break as one rune.
// An insertion has Removed == 0 and a deletion has Inserted == 0.
type Edit struct {

	// Offset is the document offset where the edit starts.
	Offset int

	// Removed is the number of runes removed at Offset.
	Removed int

	// Inserted is the number of runes inserted at Offset.
	Inserted int

	// Start is the line position of Offset, which is the same
	// before and after the edit.
	Start Pos

	// OldEnd is the end of the removed text, in the text before the edit.
	OldEnd Pos

	// NewEnd is the end of the inserted text, in the text after the edit.
	NewEnd Pos
}

// LineDelta returns the change in the number of lines caused by the edit.
func (te *Edit) LineDelta() int {
	return te.NewEnd.Line - te.OldEnd.Line
}

// AdjustPosDel determines what to do with positions within deleted region
type AdjustPosDel int32

// these are options for what to do with positions within deleted region
// for the AdjustOffset function
const (
	// AdjustPosDelErr means return -1 when in deleted region.
	AdjustPosDelErr AdjustPosDel = iota

	// AdjustPosDelStart means return start of deleted region.
	AdjustPosDelStart

	// AdjustPosDelEnd means return end of the replacement text.
	AdjustPosDelEnd
)

// AdjustOffset adjusts the given document offset as a function of the edit.
// Offsets before the edit are unchanged, and offsets at or after the end of
// the removed text move by the size difference, so that an insertion at
// exactly the offset pushes it forward. If the offset was within the removed
// text, del determines what is returned.
func (te *Edit) AdjustOffset(off int, del AdjustPosDel) int {
	if te == nil || off < te.Offset {
		return off
	}
	if off >= te.Offset+te.Removed {
		return off + te.Inserted - te.Removed
	}
	switch del {
	case AdjustPosDelStart:
		return te.Offset
	case AdjustPosDelEnd:
		return te.Offset + te.Inserted
	}
	return -1
}

func (te *Edit) String() string {
	return fmt.Sprintf("@%d -%d +%d [%s %s -> %s]", te.Offset, te.Removed, te.Inserted, te.Start, te.OldEnd, te.NewEnd)
}
