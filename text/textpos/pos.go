// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides types for representing positions
// and edits within line-based text.
package textpos

import "fmt"

// Pos is a position within the text, in 0-based line and rune (Char)
// indexes. It is converted to 1-based values for public display.
type Pos struct {
	Line int
	Char int
}

// String satisfies the [fmt.Stringer] interface.
func (ps Pos) String() string {
	s := fmt.Sprintf("%d", ps.Line+1)
	if ps.Char != 0 {
		s += fmt.Sprintf(":%d", ps.Char)
	}
	return s
}

