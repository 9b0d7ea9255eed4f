package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "sift.dev/pkg/sift/internal/model"
)

// StyledUI implements UI with the same layout as SimpleUI, colored for terminals.
type StyledUI struct {
	cmd *cobra.Command
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{cmd: cmd}
}

type matchStyles struct {
	label lipgloss.Style
	file  lipgloss.Style
	line  lipgloss.Style
}

func newMatchStyles(out io.Writer) matchStyles {
	renderer := lipgloss.NewRenderer(out)
	blue := lipgloss.Color("4")
	red := lipgloss.Color("1")

	return matchStyles{
		label: renderer.NewStyle().Bold(true).Foreground(blue),
		file:  renderer.NewStyle().Underline(true).Foreground(blue).TabWidth(lipgloss.NoTabConversion),
		line:  renderer.NewStyle().Bold(true).Foreground(red).TabWidth(lipgloss.NoTabConversion),
	}
}

// DisplayMatches prints the groups with terminal colors.
func (s *StyledUI) DisplayMatches(ctx context.Context, groups []m.FileMatchGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := s.cmd.OutOrStdout()
	styles := newMatchStyles(out)

	for _, group := range groups {
		header := styles.label.Render(headerPrefix) + styles.file.Render(string(group.FileName))
		if err := writeLine(out, header); err != nil {
			return err
		}

		for _, match := range group.Matches {
			if err := writeLine(out, styles.line.Render(fmt.Sprintf("%d: %s", match.LineNumber, match.LineText))); err != nil {
				return err
			}
		}

		if err := writeLine(out, ""); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(out io.Writer, line string) error {
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return m.NewIoError("write", "", err)
	}

	return nil
}
