// Package remote provides the client for the GitHub gitignore template
// repository: a hierarchical listing capability over the contents API and
// a raw content download capability. Every call is bounded by a short
// timeout so an unreachable remote cannot hang a run.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	generrors "github.com/pomelyu/gitignore-generator/internal/errors"
)

// Entry types returned by the contents API.
const (
	TypeFile = "file"
	TypeDir  = "dir"
)

// Entry is one record of a listing response.
type Entry struct {
	// Name is the file or directory basename.
	Name string `json:"name"`
	// Path is the repository-relative path.
	Path string `json:"path"`
	// Type is "file" or "dir".
	Type string `json:"type"`
	// DownloadURL is the direct raw download reference. Empty for dirs.
	DownloadURL string `json:"download_url"`
	// URL is the child listing reference for directories.
	URL string `json:"url"`
}

// Client talks to the template repository over HTTP.
type Client struct {
	apiBase string
	rawBase string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the given API and raw-content base URLs.
func New(apiBase, rawBase string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		apiBase: strings.TrimRight(apiBase, "/"),
		rawBase: strings.TrimRight(rawBase, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List queries the listing at the given repository path. An empty path
// queries the root listing.
func (c *Client) List(ctx context.Context, path string) ([]Entry, error) {
	url := c.apiBase
	if path != "" {
		url = c.apiBase + "/" + strings.TrimLeft(path, "/")
	}
	return c.ListURL(ctx, url)
}

// ListURL queries a listing by its absolute URL. Directory entries from a
// previous listing carry their child listing URL, which goes through here.
func (c *Client) ListURL(ctx context.Context, url string) ([]Entry, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, generrors.ListingError(fmt.Sprintf("listing %s failed", url), err)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, generrors.ListingError(fmt.Sprintf("listing %s returned malformed data", url), err)
	}

	c.logger.Debug("listing_fetched", slog.String("url", url), slog.Int("entries", len(entries)))
	return entries, nil
}

// Download fetches raw template content from the given location.
func (c *Client) Download(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", generrors.DownloadError(fmt.Sprintf("download %s failed", url), err)
	}

	c.logger.Debug("content_downloaded", slog.String("url", url), slog.Int("bytes", len(body)))
	return string(body), nil
}

// RawURL constructs a raw download location from a repository-relative
// path. Fallback for catalog entries without a recorded download location.
func (c *Client) RawURL(relPath string) string {
	return c.rawBase + "/" + strings.TrimLeft(relPath, "/")
}

// get performs one bounded HTTP GET and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "gitignore-gen")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
