package domain

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"sift.dev/pkg/sift/internal/adapter"
	m "sift.dev/pkg/sift/internal/model"
)

// FileLoader reads input files into memory before they are scanned.
type FileLoader interface {
	// Load reads every path in order. In SourceExplicit mode the first read
	// failure aborts with an *model.IoError; in SourceDiscovered mode failing
	// files are dropped and the rest are returned.
	Load(ctx context.Context, paths []m.Path, mode m.SourceMode) ([]m.FileRecord, error)
}

type fileLoader struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewFileLoader constructs a FileLoader backed by the provided filesystem adapter.
func NewFileLoader(fsAdapter adapter.SourceFSAdapter) FileLoader {
	return &fileLoader{fsAdapter: fsAdapter}
}

func (l *fileLoader) Load(ctx context.Context, paths []m.Path, mode m.SourceMode) ([]m.FileRecord, error) {
	records := make([]m.FileRecord, 0, len(paths))

	for _, path := range paths {
		record, err := l.readRecord(ctx, path)
		if err != nil {
			if mode == m.SourceExplicit {
				slog.ErrorContext(ctx, "Failed to read file", "path", path, "error", err)
				return nil, err
			}

			slog.DebugContext(ctx, "Skipping unreadable file", "path", path, "error", err)

			continue
		}

		records = append(records, record)
	}

	slog.DebugContext(ctx, "Loaded files", "requested", len(paths), "loaded", len(records), "mode", mode)

	return records, nil
}

func (l *fileLoader) readRecord(ctx context.Context, path m.Path) (m.FileRecord, error) {
	data, err := l.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return m.FileRecord{}, m.NewIoError("read", path, err)
	}

	if !utf8.Valid(data) {
		return m.FileRecord{}, m.NewIoError("read", path, m.ErrInvalidEncoding)
	}

	return m.FileRecord{FileName: path, Contents: string(data)}, nil
}
