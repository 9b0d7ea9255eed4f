package mocks

import (
	"io/fs"
	"time"
)

// FakeFileInfo is a static fs.FileInfo used to feed walk callbacks in tests.
type FakeFileInfo struct {
	FileName string
	FileMode fs.FileMode
}

// Name returns the base name.
func (f FakeFileInfo) Name() string { return f.FileName }

// Size always reports zero.
func (f FakeFileInfo) Size() int64 { return 0 }

// Mode returns the configured mode.
func (f FakeFileInfo) Mode() fs.FileMode { return f.FileMode }

// ModTime returns the zero time.
func (f FakeFileInfo) ModTime() time.Time { return time.Time{} }

// IsDir reports whether the mode marks a directory.
func (f FakeFileInfo) IsDir() bool { return f.FileMode.IsDir() }

// Sys returns nil.
func (f FakeFileInfo) Sys() any { return nil }
