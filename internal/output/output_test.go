package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_StatusIcons(t *testing.T) {
	tests := []struct {
		name  string
		print func(w *Writer)
		want  string
	}{
		{name: "info", print: func(w *Writer) { w.Info("loading") }, want: "ℹ loading\n"},
		{name: "success", print: func(w *Writer) { w.Success("done") }, want: "✓ done\n"},
		{name: "warning", print: func(w *Writer) { w.Warning("careful") }, want: "⚠ careful\n"},
		{name: "error", print: func(w *Writer) { w.Error("failed") }, want: "✗ failed\n"},
		{name: "plain", print: func(w *Writer) { w.Plain("bare") }, want: "bare\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_Formatted(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Successf("added %d of %d", 3, 5)
	assert.Equal(t, "✓ added 3 of 5\n", buf.String())
}

func TestWriter_Header(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Header("SUMMARY OF SELECTED TEMPLATES")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("=", 50), lines[0])
	assert.Equal(t, "SUMMARY OF SELECTED TEMPLATES", lines[1])
	assert.Equal(t, lines[0], lines[2])
}

func TestWriter_Newline(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Newline()
	assert.Equal(t, "\n", buf.String())
}
