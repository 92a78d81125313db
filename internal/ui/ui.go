// Package ui provides terminal capability detection and shared styles
// for the interactive selection components.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY checks if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// InputIsTTY checks if the reader is a terminal. Piped stdin gets the
// plain numbered prompts instead of the full-screen picker.
func InputIsTTY(r io.Reader) bool {
	if r == nil {
		return false
	}

	if f, ok := r.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if the NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// DetectCI checks if running in a CI environment.
func DetectCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"}
	for _, v := range ciVars {
		if _, exists := os.LookupEnv(v); exists {
			return true
		}
	}
	return false
}

// Interactive reports whether the full-screen picker should be used:
// both ends are terminals and we are not in CI.
func Interactive(in io.Reader, out io.Writer) bool {
	return InputIsTTY(in) && IsTTY(out) && !DetectCI()
}
