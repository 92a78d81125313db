package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// maxDuplicateExamples caps the duplicate rules listed in a summary.
const maxDuplicateExamples = 5

// DiffSummary reports what merging the templates into an existing
// document would change: how many rules are duplicates to be skipped and
// how many are new, with up to five example duplicates in sorted order.
func DiffSummary(existing string, templates []Template) string {
	existingRules := ExtractRules(existing)

	newRules := make(map[string]struct{})
	for _, tpl := range templates {
		for rule := range ExtractRules(tpl.Content) {
			newRules[rule] = struct{}{}
		}
	}

	var duplicates []string
	additions := 0
	for rule := range newRules {
		if _, ok := existingRules[rule]; ok {
			duplicates = append(duplicates, rule)
		} else {
			additions++
		}
	}
	sort.Strings(duplicates)

	var b strings.Builder
	fmt.Fprintf(&b, "Duplicate rules to skip: %d\n", len(duplicates))
	fmt.Fprintf(&b, "New rules to add: %d\n", additions)

	if len(duplicates) > 0 {
		b.WriteString("\nDuplicate rules (examples):\n")
		shown := duplicates
		if len(shown) > maxDuplicateExamples {
			shown = shown[:maxDuplicateExamples]
		}
		for _, rule := range shown {
			fmt.Fprintf(&b, "  - %s\n", rule)
		}
		if rest := len(duplicates) - maxDuplicateExamples; rest > 0 {
			fmt.Fprintf(&b, "  ... and %d more\n", rest)
		}
	}

	return b.String()
}

// UnifiedDiff renders a unified diff between the existing document and
// the document a merge would produce.
func UnifiedDiff(existing, merged string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(existing),
		B:        difflib.SplitLines(merged),
		FromFile: "current",
		ToFile:   "merged",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// ValidateSyntax performs cosmetic checks on a document and returns any
// warnings. It does not parse ignore-pattern semantics beyond line text.
func ValidateSyntax(content string) (bool, []string) {
	var warnings []string

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "//") {
			warnings = append(warnings, fmt.Sprintf("Line %d: C-style comments not supported, use '#'", i+1))
		}
		if strings.HasPrefix(trimmed, "/*") {
			warnings = append(warnings, fmt.Sprintf("Line %d: Consider using '#' for comments", i+1))
		}
	}

	return len(warnings) == 0, warnings
}
