package catalog

import "strings"

// Search returns full names matching the query, deduplicated, in this
// precedence: a case-insensitive exact match returns that single name
// only; otherwise prefix matches come first, then substring matches,
// each in catalog iteration order. An empty or whitespace-only query
// returns nothing, never "match everything".
func (c *Catalog) Search(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	lower := strings.ToLower(query)

	names := c.Names()

	for _, name := range names {
		if strings.ToLower(name) == lower {
			return []string{name}
		}
	}

	var results []string
	seen := map[string]bool{}

	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			results = append(results, name)
			seen[name] = true
		}
	}

	for _, name := range names {
		if seen[name] {
			continue
		}
		if strings.Contains(strings.ToLower(name), lower) {
			results = append(results, name)
		}
	}

	return results
}

// Resolve maps a user-supplied name to exactly one catalog full name.
// A case-insensitive exact match wins; otherwise the search result is
// used only when it yields a single candidate. Zero or multiple
// candidates both resolve to "unresolved", leaving disambiguation to
// the caller.
func (c *Catalog) Resolve(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}

	for _, full := range c.Names() {
		if strings.ToLower(full) == lower {
			return full, true
		}
	}

	matches := c.Search(name)
	if len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}
