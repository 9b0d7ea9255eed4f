package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	m "sift.dev/pkg/sift/internal/model"
)

// SimpleUI implements UI by writing plain text to the command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMatches prints the groups in plain text.
func (s *SimpleUI) DisplayMatches(ctx context.Context, groups []m.FileMatchGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, group := range groups {
		if err := s.displayGroup(group); err != nil {
			return err
		}
	}

	return nil
}

func (s *SimpleUI) displayGroup(group m.FileMatchGroup) error {
	if err := s.outPrintf("%s%s\n", headerPrefix, group.FileName); err != nil {
		return err
	}

	for _, match := range group.Matches {
		if err := s.outPrintf("%d: %s\n", match.LineNumber, match.LineText); err != nil {
			return err
		}
	}

	return s.outPrintf("\n")
}

// outPrintf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) outPrintf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...); err != nil {
		return m.NewIoError("write", "", err)
	}

	return nil
}
