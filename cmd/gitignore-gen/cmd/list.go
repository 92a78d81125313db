package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
	"github.com/pomelyu/gitignore-generator/internal/output"
)

// listOptions holds CLI flags for list.
type listOptions struct {
	category string // "all", "root", "Global", "community"
	format   string // "text", "json"
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all available templates",
		Long: `List the templates in the catalog, grouped by category.

Categories:
  root       language and tool templates at the repository root
  Global     editor and OS templates
  community  community-maintained templates

Examples:
  gitignore-gen list
  gitignore-gen list --category Global`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "all", "Category to list: all, root, Global, community")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	out := output.New(cmd.OutOrStdout())

	eng, err := newEngine()
	if err != nil {
		return err
	}

	cat, err := eng.loadCatalog(ctx)
	if err != nil {
		return err
	}

	categories := catalog.Categories
	if opts.category != "all" {
		wanted := catalog.Category(opts.category)
		found := false
		for _, c := range catalog.Categories {
			if c == wanted {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown category %q (expected all, root, Global or community)", opts.category)
		}
		categories = []catalog.Category{wanted}
	}

	if opts.format == "json" {
		grouped := make(map[catalog.Category][]string, len(categories))
		for _, c := range categories {
			grouped[c] = cat.NamesByCategory(c)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(grouped)
	}

	for _, c := range categories {
		names := cat.NamesByCategory(c)
		if len(names) == 0 {
			continue
		}
		out.Plainf("%s (%d):", c, len(names))
		for _, name := range names {
			out.Plainf("  %s", name)
		}
		out.Newline()
	}
	out.Plainf("Total: %d templates", cat.Count())
	return nil
}
