package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
	"github.com/pomelyu/gitignore-generator/internal/config"
	"github.com/pomelyu/gitignore-generator/internal/content"
	"github.com/pomelyu/gitignore-generator/internal/remote"
)

// engine wires the remote client, catalog store and content cache from
// the resolved configuration. Every subcommand builds one.
type engine struct {
	cfg    *config.Config
	client *remote.Client
	store  *catalog.Store
}

// newEngine resolves configuration and builds the shared components.
func newEngine() (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.Default()
	client := remote.New(cfg.APIBase, cfg.RawBase, cfg.Timeout(), remote.WithLogger(logger))
	fetcher := catalog.NewFetcher(client, logger)
	store := catalog.NewStore(cfg.CacheDir, fetcher, cfg.Validity(), logger)

	return &engine{cfg: cfg, client: client, store: store}, nil
}

// loadCatalog returns the current catalog, refreshing it when the
// persisted copy is missing or stale.
func (e *engine) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return e.store.Load(ctx)
}

// contentCache builds the per-template content cache over the catalog.
// Template files live in their own subdirectory so they never collide
// with the catalog manifest at the cache root.
func (e *engine) contentCache(cat *catalog.Catalog) *content.Cache {
	return content.NewCache(filepath.Join(e.cfg.CacheDir, "templates"), cat, e.client, slog.Default())
}
