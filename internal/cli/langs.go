// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cogentcore.org/lexfold/base/errors"
	"cogentcore.org/lexfold/base/fsx"
	"cogentcore.org/lexfold/text/languages"
)

func newLangsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "langs [file...]",
		Short: "List the supported languages, or detect the language of files",
		Long: `With no arguments, list the languages that have their own tokenizer,
with their aliases, file extensions and whether they support folding.
Other languages known to chroma are tokenized without folding.

With file arguments, print the language detected for each file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.listLanguages(cmd.OutOrStdout())
			}
			return a.detectLanguages(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) listLanguages(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tALIASES\tEXTENSIONS\tFOLDING")
	for _, s := range a.reg.Languages() {
		fold := "no"
		if s.NewFoldParser != nil {
			fold = "yes"
		}
		exts := append(append([]string{}, s.Extensions...), s.Globs...)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, list(s.Aliases), list(exts), fold)
	}
	return tw.Flush()
}

func list(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ",")
}

func (a *app) detectLanguages(w io.Writer, files []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range files {
		content, err := fsx.ReadText(name)
		if err != nil {
			slog.Warn("skipping file", "file", name, "err", err)
			continue
		}
		s := a.reg.Detect(name, content)
		if s.Fallback && !a.cfg.Document.ChromaFallback {
			s = errors.Log1(a.reg.Lookup(languages.PlainName))
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, s.Name)
	}
	return tw.Flush()
}
