// Package output provides consistent CLI output formatting for prompts,
// summaries and status messages.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Writer provides formatted output for the CLI.
type Writer struct {
	out io.Writer
}

// New creates a new output Writer.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "%s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (w *Writer) Info(msg string) {
	w.Status("ℹ", msg)
}

// Infof prints a formatted informational message.
func (w *Writer) Infof(format string, args ...any) {
	w.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (w *Writer) Success(msg string) {
	w.Status("✓", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠", msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status("✗", msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Header prints a section header between divider lines.
func (w *Writer) Header(title string) {
	w.Divider()
	_, _ = fmt.Fprintln(w.out, title)
	w.Divider()
}

// Divider prints a horizontal divider line.
func (w *Writer) Divider() {
	_, _ = fmt.Fprintln(w.out, strings.Repeat("=", 50))
}

// Rule prints a lighter horizontal rule.
func (w *Writer) Rule() {
	_, _ = fmt.Fprintln(w.out, strings.Repeat("-", 50))
}

// Plain prints a message without any icon.
func (w *Writer) Plain(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Plainf prints a formatted message without any icon.
func (w *Writer) Plainf(format string, args ...any) {
	w.Plain(fmt.Sprintf(format, args...))
}

// Prompt prints an input prompt without a trailing newline.
func (w *Writer) Prompt(msg string) {
	_, _ = fmt.Fprint(w.out, msg)
}

// Promptf prints a formatted input prompt without a trailing newline.
func (w *Writer) Promptf(format string, args ...any) {
	w.Prompt(fmt.Sprintf(format, args...))
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}
