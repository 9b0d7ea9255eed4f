package cmd

import (
	"github.com/spf13/cobra"
	"sift.dev/pkg/sift/internal/controller"
)

func newPlainUI(cmd *cobra.Command) controller.UI {
	return controller.NewSimpleUI(cmd)
}
