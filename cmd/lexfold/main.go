// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lexfold tokenizes and folds source files on the command line,
// and can watch a file to show incremental re-tokenization as it changes.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/lexfold/internal/cli"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit})
	if err := root.Execute(); err != nil {
		slog.Error("lexfold failed", "err", err)
		return 1
	}
	return 0
}
