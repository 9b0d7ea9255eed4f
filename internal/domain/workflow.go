// Package domain implements the search pipeline: path resolution, loading,
// concurrent matching and result collection.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"sift.dev/pkg/sift/internal/adapter"
	"sift.dev/pkg/sift/internal/controller"
	m "sift.dev/pkg/sift/internal/model"
)

// SearchArgs contains the arguments for one search run.
type SearchArgs struct {
	Query      string
	Path       m.Path // empty means walk the working directory
	IgnoreCase bool
	MinMatches int
	Threads    int
}

// Workflow runs a complete search: resolve, load, scan, display.
type Workflow interface {
	Search(ctx context.Context, args SearchArgs) error
}

type workflow struct {
	PathResolver
	FileLoader
	Scheduler
	controller.UI
}

// NewWorkflow creates a Workflow with the default resolver, loader and scheduler.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return NewWorkflowWith(
		NewPathResolver(fsAdapter),
		NewFileLoader(fsAdapter),
		NewScheduler(NewMatcher()),
		ui,
	)
}

// NewWorkflowWith creates a Workflow from explicit components.
func NewWorkflowWith(resolver PathResolver, loader FileLoader, scheduler Scheduler, ui controller.UI) Workflow {
	return &workflow{
		PathResolver: resolver,
		FileLoader:   loader,
		Scheduler:    scheduler,
		UI:           ui,
	}
}

func (w *workflow) Search(ctx context.Context, args SearchArgs) error {
	config, err := w.buildConfig(ctx, args)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Starting search", "files", len(config.FilePaths), "mode", config.Mode, "ignoreCase", config.IgnoreCase)

	records, err := w.Load(ctx, config.FilePaths, config.Mode)
	if err != nil {
		return fmt.Errorf("load files: %w", err)
	}

	results := w.Dispatch(ctx, ScheduleArgs{
		Query:      config.Query,
		IgnoreCase: config.IgnoreCase,
		MinMatches: args.MinMatches,
		Threads:    args.Threads,
	}, records)

	groups := Collect(results)

	slog.InfoContext(ctx, "Search finished", "scanned", len(records), "reported", len(groups))

	if err := w.DisplayMatches(ctx, groups); err != nil {
		slog.ErrorContext(ctx, "Failed to display results", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) buildConfig(ctx context.Context, args SearchArgs) (m.SearchConfig, error) {
	paths, mode, err := w.Resolve(ctx, args.Path)
	if err != nil {
		return m.SearchConfig{}, err
	}

	return m.SearchConfig{
		Query:      args.Query,
		FilePaths:  paths,
		IgnoreCase: args.IgnoreCase,
		Mode:       mode,
	}, nil
}
