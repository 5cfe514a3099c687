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
)

type tokensFlags struct {
	highlight bool
	states    bool
}

func newTokensCommand(a *app) *cobra.Command {
	fl := &tokensFlags{}
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a file",
		Long: `Print the tokens of each line of a file, or of standard input if the
file is "-" or omitted. Each token is printed as line:start-end, its type
and its text. With --highlight, the source is printed in color instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDocument(fileArg(args))
			if err != nil {
				return err
			}
			if fl.highlight {
				return a.highlight(cmd.OutOrStdout(), d)
			}
			return a.printTokens(cmd.OutOrStdout(), d, fl.states)
		},
	}
	cmd.Flags().BoolVar(&fl.highlight, "highlight", false, "print the source colored by token type")
	cmd.Flags().BoolVar(&fl.states, "states", false, "print the lexer state entering each line")
	return cmd
}

// fileArg returns the file name argument, which is "-" if there is none.
func fileArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// printTokens writes one line per token.
func (a *app) printTokens(w io.Writer, d *document.Document, states bool) error {
	en := d.Engine()
	for ln := range d.NumLines() {
		if states {
			if _, err := fmt.Fprintf(w, "# line %d state %d\n", ln+1, en.EnterState(ln)); err != nil {
				return err
			}
		}
		for c := d.TokenListForLine(ln); c.Valid(); c = c.Next() {
			lx := c.Lex()
			typ := fmt.Sprintf("%-20s", lx.Token)
			_, err := fmt.Fprintf(w, "%d:%d-%d\t%s\t%q\n", ln+1, lx.Start, lx.End, styled(a.out, lx.Token, typ), c.Lexeme())
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// highlight writes the source with each token colored.
func (a *app) highlight(w io.Writer, d *document.Document) error {
	var sb strings.Builder
	for ln := range d.NumLines() {
		sb.Reset()
		for c := d.TokenListForLine(ln); c.Valid(); c = c.Next() {
			sb.WriteString(styled(a.out, c.Type(), c.Lexeme()))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
