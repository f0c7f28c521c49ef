// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"io"
	"os"
)

// FS abstracts away the filesystem.
//
// Only the read side is needed: we enumerate the ESP and read os-release, we
// never write to either.
type FS interface {
	// Open behaves like os.Open()
	Open(path string) (io.ReadCloser, error)
	// ReadDir behaves like os.ReadDir()
	ReadDir(path string) ([]os.DirEntry, error)
	// Stat behaves like os.Stat()
	Stat(path string) (os.FileInfo, error)
}

// realFS implements FS using the os package
type realFS struct{}

func (realFS) Open(path string) (io.ReadCloser, error)    { return os.Open(path) }
func (realFS) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (realFS) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }

// appFs is our default FS
var appFs FS = realFS{}
