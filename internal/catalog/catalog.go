// Package catalog maintains the flattened index of available gitignore
// templates: building it from the remote repository listing, persisting
// it with a staleness window, and resolving user-supplied names against it.
package catalog

import (
	"sort"
	"time"
)

// Suffix is the ignore-file suffix that marks a template in the listing.
const Suffix = ".gitignore"

// Category identifies which part of the repository a template came from.
type Category string

const (
	// CategoryRoot covers templates at the repository root.
	CategoryRoot Category = "root"
	// CategoryGlobal covers the Global/ subtree (editor and OS templates).
	CategoryGlobal Category = "Global"
	// CategoryCommunity covers the community/ subtree.
	CategoryCommunity Category = "community"
)

// Categories is the fixed category iteration order. Search results and
// listings follow this order, with names sorted within each category.
var Categories = []Category{CategoryRoot, CategoryGlobal, CategoryCommunity}

// Entry is one named, locatable template in the catalog.
type Entry struct {
	// FullName is the /-delimited template path, e.g. "Global/Windows".
	// The last segment is the display name. Unique within the catalog.
	FullName string `json:"full_name"`
	// Path is the repository-relative file path, e.g.
	// "Global/Windows.gitignore". Used to construct a raw download
	// location when DownloadURL is empty.
	Path string `json:"path"`
	// DownloadURL is the direct raw download reference, when recorded.
	DownloadURL string `json:"download_url"`
	// Category is the containing group.
	Category Category `json:"category"`
}

// DisplayName returns the last /-delimited segment of a full name.
func DisplayName(fullName string) string {
	for i := len(fullName) - 1; i >= 0; i-- {
		if fullName[i] == '/' {
			return fullName[i+1:]
		}
	}
	return fullName
}

// Catalog is the flattened index of all known templates plus its capture
// timestamp. It is rebuilt wholesale when absent or stale; a refresh
// replaces the entire catalog, never merges with a stale version.
type Catalog struct {
	// Entries maps category to full name to entry. Every entry's
	// Category matches its containing group.
	Entries map[Category]map[string]Entry `json:"entries"`
	// CapturedAt is the time the catalog was built from the remote.
	CapturedAt time.Time `json:"captured_at"`
}

// NewCatalog creates an empty catalog captured now.
func NewCatalog() *Catalog {
	return &Catalog{
		Entries: map[Category]map[string]Entry{
			CategoryRoot:      {},
			CategoryGlobal:    {},
			CategoryCommunity: {},
		},
		CapturedAt: time.Now(),
	}
}

// Add places an entry into its category group.
func (c *Catalog) Add(e Entry) {
	group, ok := c.Entries[e.Category]
	if !ok {
		group = map[string]Entry{}
		c.Entries[e.Category] = group
	}
	group[e.FullName] = e
}

// Lookup finds an entry by exact full name, scanning categories in order.
func (c *Catalog) Lookup(fullName string) (Entry, bool) {
	for _, cat := range Categories {
		if e, ok := c.Entries[cat][fullName]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns every full name in catalog iteration order: fixed
// category order, names sorted within each category.
func (c *Catalog) Names() []string {
	var names []string
	for _, cat := range Categories {
		group := c.Entries[cat]
		catNames := make([]string, 0, len(group))
		for name := range group {
			catNames = append(catNames, name)
		}
		sort.Strings(catNames)
		names = append(names, catNames...)
	}
	return names
}

// NamesByCategory returns the sorted full names of one category.
func (c *Catalog) NamesByCategory(cat Category) []string {
	group := c.Entries[cat]
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of entries across all categories.
func (c *Catalog) Count() int {
	n := 0
	for _, group := range c.Entries {
		n += len(group)
	}
	return n
}
