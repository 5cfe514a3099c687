// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for reading source text.
package fsx

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/h2non/filetype"

	"cogentcore.org/lexfold/base/errors"
)

// BinaryError is returned for content that is not text.
type BinaryError struct {

	// Name is the name of the file.
	Name string

	// Kind describes the content, such as a MIME type.
	Kind string
}

func (e *BinaryError) Error() string {
	return fmt.Sprintf("%s: not a text file (%s)", e.Name, e.Kind)
}

// CheckText returns a [*BinaryError] if the content is not text:
// it has a known binary file signature, a NUL byte, or is not UTF-8.
func CheckText(name string, content []byte) error {
	if kind, err := filetype.Match(content); err == nil && kind != filetype.Unknown && kind.MIME.Type != "text" {
		return &BinaryError{Name: name, Kind: kind.MIME.Value}
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return &BinaryError{Name: name, Kind: "contains NUL bytes"}
	}
	if !utf8.Valid(content) {
		return &BinaryError{Name: name, Kind: "invalid UTF-8"}
	}
	return nil
}

// ReadText reads the named text file, or standard input for "-".
func ReadText(name string) ([]byte, error) {
	var content []byte
	var err error
	if name == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return content, CheckText(name, content)
}

// ReadTextFS is [ReadText] for a file in the given file system.
func ReadTextFS(fsys fs.FS, name string) ([]byte, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return content, CheckText(name, content)
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	info, err := fs.Stat(fsys, filePath)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
