// Package merge combines gitignore templates into a single output
// document: sections with decorative headers, rule-level deduplication
// across source documents, a trailing marker section for user-owned
// rules, and a change preview against a pre-existing document.
package merge

import (
	"strings"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
)

// MarkerHeading labels the trailing section reserved for rules the user
// maintains by hand. Its presence in an existing document also marks that
// document as previously generated by this tool.
const MarkerHeading = "##### Project Specific #####"

// markerInstruction is the comment emitted under the marker heading.
const markerInstruction = "# Add your project-specific rules below this line"

// Template pairs a resolved template full name with its raw content.
type Template struct {
	Name    string
	Content string
}

// ToSection formats one template as a bordered, labeled block: a
// decorative border line, a label built from the last /-delimited segment
// of the template name, a matching border line, then the content with
// trailing whitespace trimmed and a single trailing newline.
func ToSection(name, content string) string {
	header := "##### " + catalog.DisplayName(name) + " #####"
	border := strings.Repeat("#", len(header))

	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString(header + "\n")
	b.WriteString(border + "\n")
	b.WriteString(strings.TrimRight(content, " \t\r\n") + "\n")
	return b.String()
}

// ExtractRules returns the set of rules in a document: every non-empty,
// non-comment, whitespace-trimmed line. Rules compare by exact string
// equality after trimming.
func ExtractRules(content string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		rules[trimmed] = struct{}{}
	}
	return rules
}

// Merge combines templates in caller-given order into one document.
//
// When preserveExisting is set and existing content is supplied, the
// existing document's rules seed the duplicate set, and its full trimmed
// text is prepended unless it already contains the marker heading. (A
// document with the heading was generated here before; its text is then
// not prepended at all, matching long-standing behavior.)
//
// Each template contributes a section only when it introduces at least
// one rule not seen earlier; a template whose every rule is already
// present is omitted entirely, header included. Sections are built from
// the template's whole original content, so comments and duplicate lines
// inside an emitted section are kept as-is.
//
// The document ends with the fixed marker section and exactly one
// trailing newline.
func Merge(templates []Template, existing string, preserveExisting bool) string {
	var b strings.Builder
	seen := make(map[string]struct{})

	if preserveExisting && existing != "" {
		for rule := range ExtractRules(existing) {
			seen[rule] = struct{}{}
		}
		if !strings.Contains(existing, MarkerHeading) {
			b.WriteString(strings.TrimRight(existing, " \t\r\n") + "\n\n")
		}
	}

	for _, tpl := range templates {
		rules := ExtractRules(tpl.Content)

		fresh := false
		for rule := range rules {
			if _, dup := seen[rule]; !dup {
				fresh = true
				break
			}
		}
		for rule := range rules {
			seen[rule] = struct{}{}
		}

		if fresh {
			b.WriteString(ToSection(tpl.Name, tpl.Content))
			b.WriteString("\n")
		}
	}

	border := strings.Repeat("#", len(MarkerHeading))
	b.WriteString(border + "\n")
	b.WriteString(MarkerHeading + "\n")
	b.WriteString(border + "\n")
	b.WriteString(markerInstruction + "\n")

	return strings.TrimRight(b.String(), " \t\r\n") + "\n"
}
