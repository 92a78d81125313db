// Package cmd provides the CLI commands for gitignore-gen.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pomelyu/gitignore-generator/internal/logging"
	"github.com/pomelyu/gitignore-generator/pkg/version"
)

// Debug logging flag
var (
	debugMode      bool
	loggingCleanup func()
)

// rootOptions holds CLI flags for the default generate flow.
type rootOptions struct {
	output    string
	noConfirm bool
	noColor   bool
}

// NewRootCmd creates the root command for the gitignore-gen CLI.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "gitignore-gen [template...]",
		Short: "Generate .gitignore files from GitHub's template collection",
		Long: `gitignore-gen builds a .gitignore file from the templates published
in the github/gitignore repository.

Run it with no arguments for an interactive session: pick operating
systems, programming languages and any extra templates, preview the
result and write it out. Pass template names as arguments to skip the
interactive selection:

  gitignore-gen Python Global/macOS
  gitignore-gen node --no-confirm -o backend/.gitignore

Template listings are cached locally and refreshed after seven days;
run 'gitignore-gen update' to refresh on demand.`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate("gitignore-gen version {{.Version}}\n")

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: .gitignore)")
	cmd.Flags().BoolVarP(&opts.noConfirm, "no-confirm", "y", false, "Skip confirmation prompts")

	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startLogging sets up file logging. Normal runs log best-effort at the
// configured level; --debug lowers the level and makes setup failures fatal.
func startLogging(_ *cobra.Command, _ []string) error {
	cfg := logging.DefaultConfig()
	if debugMode {
		cfg = logging.DebugConfig()
	}

	logger, cleanup, err := logging.Setup(cfg)
	if err != nil {
		if debugMode {
			return fmt.Errorf("failed to setup debug logging: %w", err)
		}
		return nil
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	if debugMode {
		slog.Info("Debug logging enabled", slog.String("version", version.Version))
	}
	return nil
}

// stopLogging flushes and closes the debug log.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		slog.Info("Debug logging stopped")
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
