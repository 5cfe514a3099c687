// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "cogentcore.org/lexfold/text/textpos"

// OnEdit adds a listener function that is called synchronously after
// every edit, once the text and all marks have been updated.
// Listeners are called in the order they were added.
func (ls *Lines) OnEdit(fun func(ed *textpos.Edit)) {
	ls.listeners = append(ls.listeners, fun)
}

// sendEdit calls the edit listeners.
func (ls *Lines) sendEdit(ed *textpos.Edit) {
	for _, fun := range ls.listeners {
		fun(ed)
	}
}
