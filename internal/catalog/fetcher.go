package catalog

import (
	"context"
	"log/slog"
	"strings"

	generrors "github.com/pomelyu/gitignore-generator/internal/errors"
	"github.com/pomelyu/gitignore-generator/internal/remote"
)

// Source is the listing capability of the remote template repository.
type Source interface {
	List(ctx context.Context, path string) ([]remote.Entry, error)
	ListURL(ctx context.Context, url string) ([]remote.Entry, error)
}

// Fetcher builds the catalog by querying the remote hierarchical listing
// and flattening it into one namespace: the flat root templates plus the
// two categorized subtrees.
type Fetcher struct {
	source Source
	logger *slog.Logger
}

// NewFetcher creates a Fetcher over the given listing source.
func NewFetcher(source Source, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{source: source, logger: logger}
}

// subtrees maps the two categorized subtree paths to their categories.
var subtrees = []struct {
	path     string
	category Category
}{
	{path: "Global", category: CategoryGlobal},
	{path: "community", category: CategoryCommunity},
}

// Fetch builds a fresh catalog. A network or parse failure at any single
// listing level is non-fatal: the corresponding section is left empty and
// the fetch proceeds with whatever was obtainable. Only a fetch that
// produces no templates at all is reported as a failure, so a useless
// catalog is never handed to the store for persisting.
func (f *Fetcher) Fetch(ctx context.Context) (*Catalog, error) {
	cat := NewCatalog()

	f.fetchRoot(ctx, cat)
	for _, st := range subtrees {
		f.fetchSubtree(ctx, cat, st.path, st.category)
	}

	if cat.Count() == 0 {
		return nil, generrors.New(generrors.ErrCodeCatalogEmpty,
			"template listing produced no templates; check your internet connection", nil)
	}

	f.logger.Info("catalog_fetched",
		slog.Int("root", len(cat.Entries[CategoryRoot])),
		slog.Int("global", len(cat.Entries[CategoryGlobal])),
		slog.Int("community", len(cat.Entries[CategoryCommunity])))

	return cat, nil
}

// fetchRoot fills the root category from the repository root listing.
func (f *Fetcher) fetchRoot(ctx context.Context, cat *Catalog) {
	entries, err := f.source.List(ctx, "")
	if err != nil {
		f.logger.Warn("root_listing_failed", slog.String("error", err.Error()))
		return
	}

	for _, item := range entries {
		if item.Type != remote.TypeFile || !strings.HasSuffix(item.Name, Suffix) {
			continue
		}
		cat.Add(Entry{
			FullName:    strings.TrimSuffix(item.Name, Suffix),
			Path:        item.Name,
			DownloadURL: item.DownloadURL,
			Category:    CategoryRoot,
		})
	}
}

// fetchSubtree fills one categorized subtree. File entries become
// <subtree>/<basename>; directory entries trigger one more listing whose
// file entries become <subtree>/<dirname>/<basename>.
func (f *Fetcher) fetchSubtree(ctx context.Context, cat *Catalog, path string, category Category) {
	entries, err := f.source.List(ctx, path)
	if err != nil {
		f.logger.Warn("subtree_listing_failed",
			slog.String("subtree", path),
			slog.String("error", err.Error()))
		return
	}

	for _, item := range entries {
		switch {
		case item.Type == remote.TypeFile && strings.HasSuffix(item.Name, Suffix):
			cat.Add(Entry{
				FullName:    path + "/" + strings.TrimSuffix(item.Name, Suffix),
				Path:        path + "/" + item.Name,
				DownloadURL: item.DownloadURL,
				Category:    category,
			})

		case item.Type == remote.TypeDir:
			f.fetchSubdir(ctx, cat, path, item, category)
		}
	}
}

// fetchSubdir fills entries from one directory inside a subtree.
func (f *Fetcher) fetchSubdir(ctx context.Context, cat *Catalog, subtree string, dir remote.Entry, category Category) {
	entries, err := f.source.ListURL(ctx, dir.URL)
	if err != nil {
		f.logger.Warn("subdir_listing_failed",
			slog.String("dir", subtree+"/"+dir.Name),
			slog.String("error", err.Error()))
		return
	}

	for _, item := range entries {
		if item.Type != remote.TypeFile || !strings.HasSuffix(item.Name, Suffix) {
			continue
		}
		cat.Add(Entry{
			FullName:    subtree + "/" + dir.Name + "/" + strings.TrimSuffix(item.Name, Suffix),
			Path:        subtree + "/" + dir.Name + "/" + item.Name,
			DownloadURL: item.DownloadURL,
			Category:    category,
		})
	}
}
