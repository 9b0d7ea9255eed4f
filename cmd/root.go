// Package cmd provides the root command and CLI setup for sift.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"sift.dev/pkg/sift/internal/adapter"
	"sift.dev/pkg/sift/internal/controller"
	"sift.dev/pkg/sift/internal/domain"
	m "sift.dev/pkg/sift/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

var ignoreCaseFlag bool
var minMatchesFlag int
var parallelFlag int
var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui)
}

const usageLine = "Usage: sift <query> [file_path]"

const rootLongDescription = `Sift prints every line containing <query>, grouped by file with 0-based
line numbers.

With [file_path] only that file is searched. Without it, every regular file
below the current directory is searched and unreadable files are skipped.

Set IGNORE_CASE (any value) or pass --ignore-case for case-insensitive search.

A query starting with '-' is read as a flag; put -- before it:

  sift -- -x notes.txt`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sift <query> [file_path]",
		Short:         "Search files for lines containing a query",
		Long:          rootLongDescription,
		Version:       buildVersion(),
		Args:          requireQuery,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey), "run_id", uuid.NewString())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Search(cmd.Context(), searchArgs(cmd, args))
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return m.NewConfigError(err.Error(), nil)
	})

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&ignoreCaseFlag, ignoreCaseFlagName, "i", false, "match case-insensitively (overrides "+ignoreCaseEnv+")")

	cmd.Flags().IntVar(&minMatchesFlag, minMatchesFlagName, domain.DefaultMinMatches, "minimum matching lines for a file to be reported")
	bindFlagToConfig(cmd.Flags().Lookup(minMatchesFlagName), minMatchesConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "maximum concurrent file scans (0 = one per file)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "write debug entries to the log file")
	cmd.Flags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default: user cache dir)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func requireQuery(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return m.NewConfigError("Didn't get a query", nil)
	}

	return nil
}

// searchArgs turns positional arguments and configuration into SearchArgs.
// Arguments after file_path are ignored.
func searchArgs(cmd *cobra.Command, args []string) domain.SearchArgs {
	search := domain.SearchArgs{
		Query:      args[0],
		IgnoreCase: resolveIgnoreCase(cmd),
		MinMatches: viper.GetInt(minMatchesConfigKey),
		Threads:    viper.GetInt(parallelConfigKey),
	}

	if len(args) > 1 {
		search.Path = m.Path(args[1])
	}

	return search
}

// resolveIgnoreCase prefers an explicit flag, then the presence of IGNORE_CASE.
func resolveIgnoreCase(cmd *cobra.Command) bool {
	if flag := cmd.Flags().Lookup(ignoreCaseFlagName); flag != nil && flag.Changed {
		return ignoreCaseFlag
	}

	return ignoreCaseConfig.IsSet(ignoreCaseConfigKey)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		reportError(rootCmd.OutOrStdout(), err)
		os.Exit(1)
	}
}

// reportError prints err to w the way the user should see it.
func reportError(w io.Writer, err error) {
	var cfgErr *m.ConfigError
	if errors.As(err, &cfgErr) {
		_, _ = fmt.Fprintln(w, cfgErr.Error())
		_, _ = fmt.Fprintln(w, usageLine)

		return
	}

	slog.Error("Run failed", "error", err)

	_, _ = fmt.Fprintf(w, "Application error: %v\n", err)
}
