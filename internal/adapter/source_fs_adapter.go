// Package adapter contains the infrastructure adapters used by the search pipeline.
package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "sift.dev/pkg/sift/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when resolving and loading input files. It hides direct `os` access so
// the pipeline can be tested without touching the disk.
type SourceFSAdapter interface {
	// Getwd returns the absolute path of the current working directory.
	Getwd(ctx context.Context) (m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	// Symbolic links are reported as links and never descended.
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path, following symbolic links.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Getwd returns the current working directory.
func (a *LocalSourceFSAdapter) Getwd(_ context.Context) (m.Path, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(dir), nil
}

// Walk iterates over entries under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(_ context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected files is the purpose of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
