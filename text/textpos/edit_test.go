// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustOffsetInsert(t *testing.T) {
	ed := &Edit{Offset: 10, Inserted: 3}
	assert.Equal(t, 9, ed.AdjustOffset(9, AdjustPosDelErr))
	assert.Equal(t, 13, ed.AdjustOffset(10, AdjustPosDelErr))
	assert.Equal(t, 23, ed.AdjustOffset(20, AdjustPosDelErr))
}

func TestAdjustOffsetDelete(t *testing.T) {
	ed := &Edit{Offset: 10, Removed: 5}
	assert.Equal(t, 9, ed.AdjustOffset(9, AdjustPosDelErr))
	assert.Equal(t, -1, ed.AdjustOffset(12, AdjustPosDelErr))
	assert.Equal(t, 10, ed.AdjustOffset(12, AdjustPosDelStart))
	assert.Equal(t, 10, ed.AdjustOffset(12, AdjustPosDelEnd))
	assert.Equal(t, 10, ed.AdjustOffset(15, AdjustPosDelErr))
	assert.Equal(t, 15, ed.AdjustOffset(20, AdjustPosDelErr))
}

func TestAdjustOffsetReplace(t *testing.T) {
	ed := &Edit{Offset: 4, Removed: 2, Inserted: 6}
	assert.Equal(t, 4, ed.AdjustOffset(5, AdjustPosDelStart))
	assert.Equal(t, 10, ed.AdjustOffset(5, AdjustPosDelEnd))
	assert.Equal(t, 10, ed.AdjustOffset(6, AdjustPosDelErr))
}

func TestEditLineDelta(t *testing.T) {
	ed := &Edit{Start: Pos{2, 0}, OldEnd: Pos{4, 1}, NewEnd: Pos{2, 5}}
	assert.Equal(t, -2, ed.LineDelta())
}
