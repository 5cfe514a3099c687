// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging for command line tools,
// using [slog] as the logging API and charmbracelet/log for
// human readable terminal output.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It is set by [SetDefault].
var UserLevel = slog.LevelInfo

// ParseLevel returns the [slog.Level] for the given name,
// which is one of debug, info, warn (warning) or error.
// An empty name is the same as info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logx: unknown log level %q", name)
}

// charmLevel converts the slog level to the charmbracelet level.
func charmLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level <= slog.LevelInfo:
		return log.InfoLevel
	case level <= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

// NewHandler returns a [slog.Handler] writing to w at the given level.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		Level:           charmLevel(level),
		ReportTimestamp: level <= slog.LevelDebug,
	})
}

// SetDefault installs a [NewHandler] logger for w as the [slog] default,
// and records the level in [UserLevel].
func SetDefault(w io.Writer, level slog.Level) {
	UserLevel = level
	slog.SetDefault(slog.New(NewHandler(w, level)))
}
