// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the cobra commands of lexfold.
package cli

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/lexfold/base/errors"
	"cogentcore.org/lexfold/base/fsx"
	"cogentcore.org/lexfold/base/logx"
	"cogentcore.org/lexfold/text/document"
	"cogentcore.org/lexfold/text/languages"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
}

// configFiles are the config files looked for in the current
// directory when there is no --config flag.
var configFiles = []string{".lexfold.toml", ".lexfold.yaml", ".lexfold.yml"}

// app is the state shared by the commands, set up before each runs.
type app struct {
	cfg *Config
	reg *languages.Registry
	out *termenv.Output
}

// flags are the persistent flags of the root command.
type flags struct {
	config   string
	logLevel string
	color    string
	language string
	noFold   bool
}

// NewRootCommand returns the root lexfold command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{}
	fl := &flags{}
	root := &cobra.Command{
		Use:   "lexfold",
		Short: "Incremental tokenizing and code folding for source files",
		Long: `lexfold tokenizes source files with per-language incremental lexers,
and computes their code folds.

The language of a file is detected from its name and content, unless it
is given with --language. Settings are read from the --config file, or
from .lexfold.toml or .lexfold.yaml in the current directory.`,
		Version: info.Version + " (" + info.Commit + ")",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, fl)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&fl.config, "config", "", "path to a TOML or YAML config file")
	pf.StringVar(&fl.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&fl.color, "color", colorAuto, "colorize output: auto, always or never")
	pf.StringVarP(&fl.language, "language", "l", "", "language name, instead of detecting it")
	pf.BoolVar(&fl.noFold, "no-fold", false, "turn off code folding")

	root.AddCommand(newTokensCommand(a))
	root.AddCommand(newFoldsCommand(a))
	root.AddCommand(newLangsCommand(a))
	root.AddCommand(newWatchCommand(a))
	return root
}

// setup loads the config, applies the flags set on the command line
// and installs the logger.
func (a *app) setup(cmd *cobra.Command, fl *flags) error {
	path := fl.config
	if path == "" {
		path = findConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}
	if fs.Changed("color") {
		cfg.Color = fl.color
	}
	if fs.Changed("language") {
		cfg.Document.Language = fl.language
	}
	if fl.noFold {
		cfg.Document.Folding = false
	}
	level, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logx.SetDefault(cmd.ErrOrStderr(), level)
	if path != "" {
		slog.Debug("loaded config", "path", path)
	}

	a.cfg = cfg
	a.reg = languages.Default()
	if err := cfg.Apply(a.reg); err != nil {
		return err
	}
	a.out, err = newOutput(cmd.OutOrStdout(), cfg.Color)
	return err
}

// findConfig returns the first of [configFiles] that exists, or "".
func findConfig() string {
	dir := os.DirFS(".")
	for _, name := range configFiles {
		if errors.Ignore1(fsx.FileExistsFS(dir, name)) {
			return name
		}
	}
	return ""
}

// newDocument returns a new document with the configured settings,
// checking that any configured language is known.
func (a *app) newDocument() (*document.Document, error) {
	if name := a.cfg.Document.Language; name != "" {
		s, err := a.reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		if s.Fallback && !a.cfg.Document.ChromaFallback {
			return nil, &languages.UnknownLanguageError{Name: name}
		}
	}
	return document.New(a.reg, a.cfg.Document), nil
}

// openDocument reads the named file, or standard input for "-",
// into a new document.
func (a *app) openDocument(name string) (*document.Document, error) {
	content, err := fsx.ReadText(name)
	if err != nil {
		return nil, err
	}
	d, err := a.newDocument()
	if err != nil {
		return nil, err
	}
	d.SetFile(name, content)
	slog.Debug("opened", "file", name, "language", d.Language().Name, "lines", d.NumLines())
	return d, nil
}
