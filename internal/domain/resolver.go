package domain

import (
	"context"
	"log/slog"
	"os"

	"sift.dev/pkg/sift/internal/adapter"
	m "sift.dev/pkg/sift/internal/model"
)

// PathResolver decides which files a run scans.
type PathResolver interface {
	// Resolve returns explicit alone when it is non-empty. Otherwise it walks
	// the working directory and returns every regular file below it.
	Resolve(ctx context.Context, explicit m.Path) ([]m.Path, m.SourceMode, error)
}

type pathResolver struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewPathResolver constructs a PathResolver backed by the provided filesystem adapter.
func NewPathResolver(fsAdapter adapter.SourceFSAdapter) PathResolver {
	return &pathResolver{fsAdapter: fsAdapter}
}

func (r *pathResolver) Resolve(ctx context.Context, explicit m.Path) ([]m.Path, m.SourceMode, error) {
	if explicit != "" {
		return []m.Path{explicit}, m.SourceExplicit, nil
	}

	root, err := r.fsAdapter.Getwd(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get working directory", "error", err)
		return nil, m.SourceDiscovered, m.NewConfigError("Error getting the current directory", err)
	}

	if root == "" {
		return nil, m.SourceDiscovered, m.NewConfigError("Could not convert Path", nil)
	}

	paths, err := r.discover(ctx, root)
	if err != nil {
		return nil, m.SourceDiscovered, err
	}

	slog.DebugContext(ctx, "Discovered files", "root", root, "count", len(paths))

	return paths, m.SourceDiscovered, nil
}

// discover collects regular files under root. Unreadable entries are skipped.
func (r *pathResolver) discover(ctx context.Context, root m.Path) ([]m.Path, error) {
	var paths []m.Path

	err := r.fsAdapter.Walk(ctx, root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.DebugContext(ctx, "Skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if r.isFile(ctx, m.Path(path), info) {
			paths = append(paths, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, m.NewConfigError("Could not walk the current directory", err)
	}

	return paths, nil
}

// isFile reports whether the entry is a regular file, following symlinks.
func (r *pathResolver) isFile(ctx context.Context, path m.Path, info os.FileInfo) bool {
	if info == nil {
		return false
	}

	if info.Mode().IsRegular() {
		return true
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := r.fsAdapter.FileInfo(ctx, path)
	if err != nil {
		slog.DebugContext(ctx, "Skipping broken symlink", "path", path, "error", err)
		return false
	}

	return target.Mode().IsRegular()
}
