package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
	"github.com/pomelyu/gitignore-generator/internal/content"
	"github.com/pomelyu/gitignore-generator/internal/errors"
	"github.com/pomelyu/gitignore-generator/internal/merge"
	"github.com/pomelyu/gitignore-generator/internal/output"
	"github.com/pomelyu/gitignore-generator/internal/prompt"
)

// errCancelled signals a user cancellation. The message is already on
// the console by the time it propagates, so cobra's own error printing
// is silenced for it; the process still exits non-zero.
var errCancelled = errors.New(errors.ErrCodeCancelled, "operation cancelled", nil)

// cancel prints the cancellation notice and returns errCancelled with
// cobra's error/usage output suppressed.
func cancel(cmd *cobra.Command, out *output.Writer) error {
	out.Plain("Operation cancelled.")
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return errCancelled
}

// runGenerate is the default flow: select templates (interactively or
// from positional arguments), fetch their contents, preview and write
// the output document.
func runGenerate(ctx context.Context, cmd *cobra.Command, args []string, opts rootOptions) error {
	out := output.New(cmd.OutOrStdout())
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts.noColor)

	eng, err := newEngine()
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = eng.cfg.Output
	}
	gen := merge.NewGenerator(outputPath)

	// Decide how to handle an existing document before any network work.
	mode := merge.ModeCreate
	if gen.Exists() {
		if opts.noConfirm {
			mode = merge.ModeAppend
		} else {
			mode = p.MergeStrategy(true)
		}
		if mode == merge.ModeCancel {
			return cancel(cmd, out)
		}
	}

	out.Info("Fetching available templates...")
	cat, err := eng.loadCatalog(ctx)
	if err != nil {
		out.Errorf("Failed to load template catalog: %v", err)
		return err
	}
	slog.Info("catalog_loaded", slog.Int("templates", cat.Count()))

	var names []string
	if len(args) > 0 {
		names, err = resolveArgs(cat, args)
		if err != nil {
			out.Errorf("%v", err)
			return err
		}
	} else {
		names = selectInteractive(p, cat, out)
		if names == nil {
			return cancel(cmd, out)
		}
	}

	if len(names) == 0 {
		err := errors.New(errors.ErrCodeNoTemplates, "no templates selected", nil)
		out.Error("No templates selected.")
		return err
	}

	templates := fetchTemplates(ctx, eng.contentCache(cat), names, out)
	if len(templates) == 0 {
		err := errors.New(errors.ErrCodeDownloadFailed, "no template contents could be fetched", nil)
		out.Error("No template contents could be fetched.")
		return err
	}

	// Preview the change against the existing document in append mode.
	if mode == merge.ModeAppend {
		existing := gen.ReadExisting()
		out.Newline()
		out.Header("MERGE PREVIEW")
		out.Plain(merge.DiffSummary(existing, templates))

		merged := merge.Merge(templates, existing, true)
		if diff, err := merge.UnifiedDiff(existing, merged); err == nil && diff != "" {
			out.Rule()
			out.Plain(strings.TrimRight(diff, "\n"))
			out.Rule()
		}

		if !opts.noConfirm && !p.YesNo("Apply these changes", true) {
			return cancel(cmd, out)
		}
	} else if !opts.noConfirm && len(args) == 0 {
		if !p.Preview(templates) {
			return cancel(cmd, out)
		}
	}

	ok, msg := gen.Generate(templates, mode)
	if !ok {
		out.Error(msg)
		return errors.New(errors.ErrCodeOutputWrite, msg, nil)
	}
	out.Success(msg)
	if abs, err := filepath.Abs(gen.OutputPath); err == nil {
		out.Infof("Location: %s", abs)
	}

	if valid, warnings := merge.ValidateSyntax(gen.ReadExisting()); !valid {
		for _, w := range warnings {
			out.Warning(w)
		}
	}
	return nil
}

// selectInteractive runs the full prompt flow and returns the selected
// template full names in selection order, or nil when the user declines
// the summary.
func selectInteractive(p *prompt.Prompter, cat *catalog.Catalog, out *output.Writer) []string {
	var osNames []string
	for _, osName := range p.OSSelection() {
		full := prompt.OSTemplates[osName]
		if _, ok := cat.Lookup(full); !ok {
			out.Warningf("Template not available: %s", full)
			continue
		}
		osNames = append(osNames, full)
	}

	languages := p.Languages(cat)
	additional := p.AdditionalTemplates(cat)

	if len(osNames)+len(languages)+len(additional) == 0 {
		return []string{}
	}

	if !p.Summary(osNames, languages, additional) {
		return nil
	}

	names := make([]string, 0, len(osNames)+len(languages)+len(additional))
	names = append(names, osNames...)
	names = append(names, languages...)
	names = append(names, additional...)
	return names
}

// resolveArgs maps positional arguments to catalog full names. Unknown
// names fail outright; ambiguous names fail with the candidate list.
func resolveArgs(cat *catalog.Catalog, args []string) ([]string, error) {
	names := make([]string, 0, len(args))
	seen := map[string]bool{}

	for _, arg := range args {
		full, ok := cat.Resolve(arg)
		if !ok {
			matches := cat.Search(arg)
			switch len(matches) {
			case 0:
				return nil, errors.Newf(errors.ErrCodeUnknownName,
					"no template found for %q", arg)
			case 1:
				full = matches[0]
			default:
				return nil, errors.Newf(errors.ErrCodeAmbiguousName,
					"%q matches multiple templates: %s", arg, strings.Join(matches, ", "))
			}
		}
		if !seen[full] {
			seen[full] = true
			names = append(names, full)
		}
	}
	return names, nil
}

// fetchTemplates downloads each template's content through the cache.
// Individual failures are reported and skipped.
func fetchTemplates(ctx context.Context, cache *content.Cache, names []string, out *output.Writer) []merge.Template {
	templates := make([]merge.Template, 0, len(names))
	for _, name := range names {
		body, ok := cache.Get(ctx, name)
		if !ok {
			out.Warningf("Failed to fetch template: %s", name)
			continue
		}
		templates = append(templates, merge.Template{Name: name, Content: body})
	}
	return templates
}
