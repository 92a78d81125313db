// Package content provides per-template local storage of fetched template
// text. Cached content never expires on its own; it is trusted for as
// long as the owning catalog is considered current.
package content

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
)

// memCacheSize bounds the in-process LRU fronting the disk copies.
const memCacheSize = 128

// Downloader is the raw-content capability of the remote source.
type Downloader interface {
	Download(ctx context.Context, url string) (string, error)
	RawURL(relPath string) string
}

// Cache fetches and stores template content. Lookups go memory, then
// disk, then network; only a successful download is persisted.
type Cache struct {
	dir        string
	catalog    *catalog.Catalog
	downloader Downloader
	logger     *slog.Logger
	mem        *lru.Cache[string, string]
}

// NewCache creates a Cache under dir for templates known to cat.
func NewCache(dir string, cat *catalog.Catalog, downloader Downloader, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	mem, _ := lru.New[string, string](memCacheSize)
	return &Cache{
		dir:        dir,
		catalog:    cat,
		downloader: downloader,
		logger:     logger,
		mem:        mem,
	}
}

// Get returns the content for a resolved template full name. An unknown
// name is a miss. A locally cached copy is returned without network
// access; otherwise the content is downloaded from the entry's recorded
// location (or a location constructed from its repository path), persisted
// best-effort, and returned. A failed download is a miss and caches nothing.
func (c *Cache) Get(ctx context.Context, fullName string) (string, bool) {
	entry, ok := c.catalog.Lookup(fullName)
	if !ok {
		return "", false
	}

	if content, ok := c.mem.Get(fullName); ok {
		return content, true
	}

	path := c.filePath(fullName)
	if data, err := os.ReadFile(path); err == nil {
		content := string(data)
		c.mem.Add(fullName, content)
		return content, true
	}

	url := entry.DownloadURL
	if url == "" {
		url = c.downloader.RawURL(entry.Path)
	}

	content, err := c.downloader.Download(ctx, url)
	if err != nil {
		c.logger.Warn("template_download_failed",
			slog.String("template", fullName),
			slog.String("error", err.Error()))
		return "", false
	}

	c.persist(fullName, path, content)
	c.mem.Add(fullName, content)
	return content, true
}

// persist writes a local copy; failure to persist is logged, not fatal.
func (c *Cache) persist(fullName, path, content string) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		c.logger.Warn("content_cache_dir_failed", slog.String("error", err.Error()))
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		c.logger.Warn("content_cache_write_failed",
			slog.String("template", fullName),
			slog.String("error", err.Error()))
	}
}

// filePath maps a template full name to its storage location, replacing
// the path separator so nested names stay a single file.
func (c *Cache) filePath(fullName string) string {
	safe := strings.ReplaceAll(fullName, "/", "_")
	return filepath.Join(c.dir, safe+catalog.Suffix)
}
