// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cogentcore.org/lexfold/text/document"
	"cogentcore.org/lexfold/text/folding"
)

type foldsFlags struct {
	types    []string
	collapse []string
}

func newFoldsCommand(a *app) *cobra.Command {
	fl := &foldsFlags{}
	cmd := &cobra.Command{
		Use:   "folds [file]",
		Short: "Print the code folds of a file",
		Long: `Print the code folds of a file, or of standard input if the file is "-"
or omitted, as a tree of fold types and 1-based line ranges.

With --collapse, the folds of the given types are collapsed and the
source is printed with their hidden lines left out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFoldTypes(fl.types)
			if err != nil {
				return err
			}
			collapse, err := parseFoldTypes(fl.collapse)
			if err != nil {
				return err
			}
			d, err := a.openDocument(fileArg(args))
			if err != nil {
				return err
			}
			if len(collapse) > 0 {
				for _, ft := range collapse {
					d.Folds().CollapseAllOfType(ft)
				}
				return printCollapsed(cmd.OutOrStdout(), d)
			}
			return a.printFolds(cmd.OutOrStdout(), d, filter)
		},
	}
	cmd.Flags().StringSliceVarP(&fl.types, "type", "t", nil, "only print folds of these types")
	cmd.Flags().StringSliceVar(&fl.collapse, "collapse", nil, "print the source with folds of these types collapsed")
	return cmd
}

// parseFoldTypes returns the fold types with the given names, ignoring case.
func parseFoldTypes(names []string) ([]folding.FoldTypes, error) {
	var fts []folding.FoldTypes
	for _, name := range names {
		found := false
		for _, ft := range folding.FoldTypesValues() {
			if strings.EqualFold(ft.String(), name) {
				fts = append(fts, ft)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown fold type %q", name)
		}
	}
	return fts, nil
}

// printFolds writes the fold tree, one fold per line, indented by depth.
func (a *app) printFolds(w io.Writer, d *document.Document, filter []folding.FoldTypes) error {
	for _, f := range d.Folds().All() {
		if len(filter) > 0 && !containsType(filter, f.Type) {
			continue
		}
		indent := strings.Repeat("  ", f.Depth())
		_, err := fmt.Fprintf(w, "%s%s %d-%d\n", indent, foldLabel(a.out, f.Type), f.StartLine()+1, f.EndLine()+1)
		if err != nil {
			return err
		}
	}
	return nil
}

func containsType(fts []folding.FoldTypes, ft folding.FoldTypes) bool {
	for _, t := range fts {
		if t == ft {
			return true
		}
	}
	return false
}

// printCollapsed writes the source without the lines hidden by
// collapsed folds, marking each line followed by hidden lines.
func printCollapsed(w io.Writer, d *document.Document) error {
	fm := d.Folds()
	ls := d.Lines()
	nl := d.NumLines()
	for ln := 0; ln >= 0; {
		line := ls.LineString(ln)
		next := fm.VisibleLineBelow(ln)
		end := next
		if end < 0 {
			end = nl
		}
		if hidden := end - ln - 1; hidden > 0 {
			line += fmt.Sprintf(" ... (%d lines)", hidden)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		ln = next
	}
	return nil
}
