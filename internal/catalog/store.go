package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// manifestName is the persisted catalog filename under the cache root.
const manifestName = "manifest.json"

// CatalogFetcher builds a fresh catalog from the remote source.
type CatalogFetcher interface {
	Fetch(ctx context.Context) (*Catalog, error)
}

// Store persists the catalog on local storage with a staleness window and
// keeps it in memory for the rest of the run once loaded. One Store is
// constructed per run and threaded through explicitly; there are no
// process-wide statics.
type Store struct {
	dir      string
	fetcher  CatalogFetcher
	validity time.Duration
	logger   *slog.Logger

	mem *Catalog
}

// NewStore creates a Store rooted at dir. The fetcher supplies fresh
// catalogs when the persisted one is absent or stale.
func NewStore(dir string, fetcher CatalogFetcher, validity time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:      dir,
		fetcher:  fetcher,
		validity: validity,
		logger:   logger,
	}
}

// ManifestPath returns the location of the persisted catalog.
func (s *Store) ManifestPath() string {
	return filepath.Join(s.dir, manifestName)
}

// Valid reports whether a persisted catalog exists, parses, and its
// capture timestamp is strictly within the validity window. A catalog
// captured exactly one window ago is already invalid.
func (s *Store) Valid() bool {
	cat, err := s.read()
	if err != nil {
		return false
	}
	return time.Since(cat.CapturedAt) < s.validity
}

// Load returns the catalog: the in-memory copy when already loaded, the
// persisted copy when valid, otherwise a fresh fetch. A read or parse
// failure of the persisted form is treated as a cache miss. The fetched
// catalog is persisted best-effort; a persist failure is logged and the
// in-memory catalog is still returned.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	if s.mem != nil {
		return s.mem, nil
	}

	if cat, err := s.read(); err == nil && time.Since(cat.CapturedAt) < s.validity {
		s.logger.Debug("catalog_loaded_from_cache",
			slog.Int("templates", cat.Count()),
			slog.Time("captured_at", cat.CapturedAt))
		s.mem = cat
		return cat, nil
	}

	return s.Refresh(ctx)
}

// Refresh fetches a fresh catalog regardless of the persisted one's
// validity, replacing it wholesale.
func (s *Store) Refresh(ctx context.Context) (*Catalog, error) {
	cat, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Save(cat); err != nil {
		s.logger.Warn("catalog_persist_failed", slog.String("error", err.Error()))
	}

	s.mem = cat
	return cat, nil
}

// Save persists the catalog as a JSON manifest. Writes go through a
// temporary file plus rename, guarded by a file lock so overlapping runs
// cannot interleave.
func (s *Store) Save(cat *Catalog) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(s.dir, "manifest.lock"))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.ManifestPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.ManifestPath())
}

// read loads and parses the persisted manifest.
func (s *Store) read() (*Catalog, error) {
	data, err := os.ReadFile(s.ManifestPath())
	if err != nil {
		return nil, err
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if cat.Entries == nil {
		cat.Entries = map[Category]map[string]Entry{}
	}
	return &cat, nil
}
