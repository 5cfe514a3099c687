// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/lexfold/text/document"
	"cogentcore.org/lexfold/text/languages"
)

// Config is the configuration of the lexfold command, which is read
// from a TOML or YAML file given by the --config flag.
type Config struct {

	// LogLevel is the log level: debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Color is when to color output: auto, always or never.
	Color string `toml:"color" yaml:"color"`

	// Globs are extra file name patterns for each language name,
	// such as "Shell" = ["*.bashrc", "PKGBUILD"].
	Globs map[string][]string `toml:"globs" yaml:"globs"`

	// Document has the document settings.
	Document document.Settings `toml:"document" yaml:"document"`
}

// DefaultConfig returns the configuration used when there is no file.
func DefaultConfig() *Config {
	cfg := &Config{LogLevel: "info", Color: colorAuto}
	cfg.Document.Defaults()
	return cfg
}

// LoadConfig returns the configuration in the given file, with the
// defaults for anything it does not set. The format is chosen by the
// file extension. An empty path returns [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err := cfg.decode(f, filepath.Ext(path)); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// decode reads the config in the format for the given file extension,
// rejecting unknown fields.
func (cfg *Config) decode(r io.Reader, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
}

// Apply adds the configured globs to the registry.
func (cfg *Config) Apply(reg *languages.Registry) error {
	for _, name := range slices.Sorted(maps.Keys(cfg.Globs)) {
		if err := reg.AddGlobs(name, cfg.Globs[name]...); err != nil {
			return fmt.Errorf("config globs: %w", err)
		}
	}
	return nil
}
