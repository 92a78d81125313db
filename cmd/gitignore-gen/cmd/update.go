package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pomelyu/gitignore-generator/internal/output"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Refresh the cached template catalog",
		Long: `Refresh the cached template catalog from GitHub.

The catalog is normally refreshed automatically once it is more than
seven days old; this forces a refresh immediately.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd.Context(), cmd)
		},
	}

	return cmd
}

func runUpdate(ctx context.Context, cmd *cobra.Command) error {
	out := output.New(cmd.OutOrStdout())

	eng, err := newEngine()
	if err != nil {
		return err
	}

	out.Info("Refreshing template catalog...")
	cat, err := eng.store.Refresh(ctx)
	if err != nil {
		out.Errorf("Failed to refresh catalog: %v", err)
		return err
	}

	slog.Info("catalog_refreshed", slog.Int("templates", cat.Count()))
	out.Successf("Catalog refreshed: %d templates available", cat.Count())
	return nil
}
