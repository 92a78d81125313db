package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pomelyu/gitignore-generator/internal/output"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	limit  int
	format string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the template catalog",
		Long: `Search the template catalog by name.

Exact matches win; otherwise prefix matches are listed before
substring matches. Matching is case-insensitive.

Examples:
  gitignore-gen search python
  gitignore-gen search vim --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSearch(cmd.Context(), cmd, query, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of results (0 = all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, query string, opts searchOptions) error {
	out := output.New(cmd.OutOrStdout())

	eng, err := newEngine()
	if err != nil {
		return err
	}

	cat, err := eng.loadCatalog(ctx)
	if err != nil {
		return err
	}

	matches := cat.Search(query)
	slog.Info("search_complete", slog.String("query", query), slog.Int("results", len(matches)))

	if opts.limit > 0 && len(matches) > opts.limit {
		matches = matches[:opts.limit]
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		out.Statusf("", "No templates found for %q", query)
		return nil
	}

	out.Statusf("", "Found %d template(s) for %q:", len(matches), query)
	for _, name := range matches {
		entry, _ := cat.Lookup(name)
		out.Plainf("  %-40s [%s]", name, entry.Category)
	}
	return nil
}
