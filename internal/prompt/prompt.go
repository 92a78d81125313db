// Package prompt implements the interactive selection flow: operating
// system selection, language entry with immediate resolution,
// additional-template search, merge strategy, summary confirmation and
// dry-run preview. All prompts treat EOF and interrupts as "use the
// default" or "cancel"; no partial state is left behind because nothing
// is written until the single final write step.
package prompt

import (
	"bufio"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
	"github.com/pomelyu/gitignore-generator/internal/merge"
	"github.com/pomelyu/gitignore-generator/internal/output"
	"github.com/pomelyu/gitignore-generator/internal/ui"
)

// maxListedMatches caps the matches shown by the plain numbered prompt.
const maxListedMatches = 10

// Resolver maps user-supplied names to catalog full names.
type Resolver interface {
	Resolve(name string) (string, bool)
	Search(query string) []string
}

// Prompter drives the interactive prompts over the given streams.
type Prompter struct {
	in     *bufio.Reader
	rawIn  io.Reader
	rawOut io.Writer
	out    *output.Writer
	styles ui.Styles

	// interactive enables the full-screen picker; plain numbered
	// prompts are used otherwise.
	interactive bool
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer, noColor bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		rawIn:       in,
		rawOut:      out,
		out:         output.New(out),
		styles:      ui.GetStyles(noColor),
		interactive: ui.Interactive(in, out),
	}
}

// availableOS lists the selectable operating systems and their templates.
var availableOS = []string{"Windows", "macOS", "Linux"}

// OSTemplates maps OS display names to their Global template names.
var OSTemplates = map[string]string{
	"Windows": "Global/Windows",
	"macOS":   "Global/macOS",
	"Linux":   "Global/Linux",
}

// DetectPlatform returns the display name of the current platform.
func DetectPlatform() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	}
	return runtime.GOOS
}

// readLine reads one trimmed input line. An EOF or read error reports ok=false.
func (p *Prompter) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// YesNo asks a yes/no question. Empty input and EOF yield the default.
func (p *Prompter) YesNo(question string, def bool) bool {
	defStr := "[y/N]"
	if def {
		defStr = "[Y/n]"
	}

	for {
		p.out.Promptf("%s %s? ", question, defStr)
		resp, ok := p.readLine()
		if !ok || resp == "" {
			return def
		}
		switch strings.ToLower(resp) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		p.out.Plain("Please enter 'y' or 'n'.")
	}
}

// OSSelection asks which operating systems to cover, defaulting to the
// detected platform. Input is comma-separated and case-insensitive.
func (p *Prompter) OSSelection() []string {
	detected := DetectPlatform()

	mapping := map[string]string{}
	for _, name := range availableOS {
		mapping[strings.ToLower(name)] = name
	}

	p.out.Newline()
	p.out.Plain("=== Operating System Selection ===")
	p.out.Plainf("Detected: %s", detected)
	p.out.Newline()
	p.out.Plainf("Available options: %s", strings.Join(availableOS, ", "))
	p.out.Plain("(Enter comma-separated values, case-insensitive)")

	for {
		p.out.Promptf("> Choose OS [default: %s]: ", detected)
		input, ok := p.readLine()
		if !ok {
			return []string{detected}
		}

		if input == "" {
			return []string{detected}
		}

		var selected, invalid []string
		for _, part := range strings.Split(input, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			if name, ok := mapping[part]; ok {
				selected = append(selected, name)
			} else {
				invalid = append(invalid, part)
			}
		}

		if len(invalid) > 0 {
			p.out.Plainf("Invalid options: %s", strings.Join(invalid, ", "))
			p.out.Plainf("Available: %s", strings.Join(availableOS, ", "))
			continue
		}
		if len(selected) == 0 {
			p.out.Plain("Please select at least one OS.")
			continue
		}
		return selected
	}
}

// Languages asks for programming languages one at a time, resolving each
// immediately and disambiguating multi-match names on the spot. An empty
// line finishes the loop.
func (p *Prompter) Languages(r Resolver) []string {
	p.out.Newline()
	p.out.Plain("=== Programming Language Selection ===")
	p.out.Plain("Enter language names (e.g., Python, Node, Java, C++)")
	p.out.Plain("Or leave blank to skip.")
	p.out.Newline()

	var languages []string
	seen := map[string]bool{}

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			languages = append(languages, name)
			p.out.Successf("Added: %s", name)
		}
	}

	for {
		p.out.Prompt("> Enter language (or press Enter to finish): ")
		input, ok := p.readLine()
		if !ok || input == "" {
			break
		}

		if resolved, ok := r.Resolve(input); ok {
			add(resolved)
			continue
		}

		matches := r.Search(input)
		switch {
		case len(matches) == 0:
			p.out.Warningf("Template not found for: %s", input)
		case len(matches) == 1:
			add(matches[0])
		default:
			if selected, ok := p.SelectFrom(matches, input); ok {
				add(selected)
			}
		}
	}

	return languages
}

// AdditionalTemplates asks for extra template searches. An empty line
// finishes the loop.
func (p *Prompter) AdditionalTemplates(r Resolver) []string {
	p.out.Newline()
	p.out.Plain("=== Additional Templates Search ===")

	var templates []string
	for {
		p.out.Prompt("> Search for template (or press Enter to skip): ")
		query, ok := p.readLine()
		if !ok || query == "" {
			break
		}

		matches := r.Search(query)
		if len(matches) == 0 {
			p.out.Warningf("No templates found for '%s'", query)
			continue
		}

		selected := matches[0]
		if len(matches) > 1 {
			var picked bool
			selected, picked = p.SelectFrom(matches, query)
			if !picked {
				continue
			}
		}

		templates = append(templates, selected)
		p.out.Successf("Added: %s", selected)
	}

	return templates
}

// SelectFrom lets the user pick one of several matching templates.
// A full-screen picker is used on a terminal; otherwise a numbered
// prompt. Returns ok=false when the user declines to pick.
func (p *Prompter) SelectFrom(matches []string, query string) (string, bool) {
	if len(matches) == 0 {
		p.out.Errorf("No templates found for '%s'", query)
		return "", false
	}

	if p.interactive {
		return p.pick(matches, query)
	}
	return p.selectNumbered(matches, query)
}

// selectNumbered is the plain fallback for non-TTY streams.
func (p *Prompter) selectNumbered(matches []string, query string) (string, bool) {
	p.out.Newline()
	p.out.Plainf("Found %d template(s) for '%s':", len(matches), query)

	shown := matches
	if len(shown) > maxListedMatches {
		shown = shown[:maxListedMatches]
	}
	for i, name := range shown {
		p.out.Plainf("  %d. %s", i+1, name)
	}
	if rest := len(matches) - maxListedMatches; rest > 0 {
		p.out.Plainf("  ... and %d more", rest)
	}

	for {
		p.out.Prompt("Select template number (or press Enter to skip): ")
		choice, ok := p.readLine()
		if !ok || choice == "" {
			return "", false
		}

		idx, err := strconv.Atoi(choice)
		if err != nil {
			p.out.Plain("Please enter a number.")
			continue
		}
		if idx >= 1 && idx <= len(matches) {
			return matches[idx-1], true
		}
		p.out.Plainf("Invalid selection. Please enter 1-%d", min(maxListedMatches, len(matches)))
	}
}

// MergeStrategy asks how to handle an existing output document.
func (p *Prompter) MergeStrategy(exists bool) merge.Mode {
	if !exists {
		return merge.ModeCreate
	}

	p.out.Newline()
	p.out.Warning("Existing .gitignore file detected!")
	p.out.Plain("Options:")
	p.out.Plain("  1. Overwrite - Replace existing .gitignore")
	p.out.Plain("  2. Append   - Append new templates to existing .gitignore")
	p.out.Plain("  3. Cancel   - Exit without making changes")

	for {
		p.out.Prompt("Choice [1-3]: ")
		choice, ok := p.readLine()
		if !ok {
			return merge.ModeAppend
		}
		switch choice {
		case "1":
			return merge.ModeOverwrite
		case "2":
			return merge.ModeAppend
		case "3":
			return merge.ModeCancel
		}
		p.out.Plain("Please enter 1, 2, or 3.")
	}
}

// Summary prints the selected templates grouped by origin and asks for
// confirmation.
func (p *Prompter) Summary(selectedOS, languages, additional []string) bool {
	p.out.Newline()
	p.out.Header("SUMMARY OF SELECTED TEMPLATES")

	printGroup := func(title string, names []string) {
		if len(names) == 0 {
			return
		}
		p.out.Newline()
		p.out.Plainf("%s (%d):", title, len(names))
		for _, name := range names {
			p.out.Plainf("  • %s", catalog.DisplayName(name))
		}
	}

	printGroup("Operating Systems", selectedOS)
	printGroup("Programming Languages", languages)
	printGroup("Additional Templates", additional)

	total := len(selectedOS) + len(languages) + len(additional)
	p.out.Newline()
	p.out.Plainf("Total templates to generate: %d", total)
	p.out.Divider()

	return p.YesNo("Proceed with generation", true)
}

// Preview shows the structure of the would-be document (per-template
// line counts plus the head of the first template) and asks to proceed.
func (p *Prompter) Preview(templates []merge.Template) bool {
	p.out.Newline()
	p.out.Header("PREVIEW OF GENERATED .gitignore")

	totalLines := 0
	for _, tpl := range templates {
		lines := len(strings.Split(strings.TrimSpace(tpl.Content), "\n"))
		totalLines += lines
		p.out.Plainf("[%s] - %d lines", tpl.Name, lines)
	}
	p.out.Newline()
	p.out.Plainf("... (showing structure, total %d lines)", totalLines)

	if len(templates) > 0 {
		p.out.Newline()
		p.out.Plain("First template preview (max 15 lines):")
		p.out.Rule()
		lines := strings.Split(strings.TrimSpace(templates[0].Content), "\n")
		shown := lines
		if len(shown) > 15 {
			shown = shown[:15]
		}
		for _, line := range shown {
			p.out.Plain(line)
		}
		if len(lines) > 15 {
			p.out.Plain("...")
		}
		p.out.Rule()
	}

	return p.YesNo("Proceed with writing .gitignore", true)
}
