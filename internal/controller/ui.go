// Package controller provides output adapters for displaying search results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "sift.dev/pkg/sift/internal/model"
)

// UI defines the interface for rendering search results.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	// DisplayMatches writes each group as a header line naming the file, one
	// "<line>: <text>" line per match and a blank separator line. Groups are
	// written in the order given. A failed write returns an *model.IoError.
	DisplayMatches(ctx context.Context, groups []m.FileMatchGroup) error
}

// NewUI returns a StyledUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const headerPrefix = "File: "
