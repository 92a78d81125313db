package merge

import (
	"fmt"
	"os"
)

// Mode selects how the output document is produced when one already exists.
type Mode string

const (
	// ModeCreate writes a fresh document; no existing content is consulted.
	ModeCreate Mode = "create"
	// ModeOverwrite replaces any existing document outright.
	ModeOverwrite Mode = "overwrite"
	// ModeAppend merges new templates while preserving the on-disk document.
	ModeAppend Mode = "append"
	// ModeCancel aborts without touching the document.
	ModeCancel Mode = "cancel"
)

// Generator writes merged documents to a fixed output path.
type Generator struct {
	// OutputPath is where the document is written.
	OutputPath string
}

// NewGenerator creates a Generator for the given output path.
func NewGenerator(outputPath string) *Generator {
	return &Generator{OutputPath: outputPath}
}

// Exists reports whether the output document is already present.
func (g *Generator) Exists() bool {
	_, err := os.Stat(g.OutputPath)
	return err == nil
}

// ReadExisting returns the current on-disk document, or empty when absent.
func (g *Generator) ReadExisting() string {
	data, err := os.ReadFile(g.OutputPath)
	if err != nil {
		return ""
	}
	return string(data)
}

// Generate merges the templates per the mode and writes the result.
// Create and overwrite ignore any existing document; append merges with
// preservation against the current on-disk content. Failures come back
// as (false, message), never as a crash.
func (g *Generator) Generate(templates []Template, mode Mode) (bool, string) {
	if len(templates) == 0 {
		return false, "No templates provided"
	}

	exists := g.Exists()

	if exists && mode == ModeCancel {
		return false, "Operation cancelled"
	}

	var merged string
	if exists && mode == ModeAppend {
		merged = Merge(templates, g.ReadExisting(), true)
	} else {
		merged = Merge(templates, "", false)
	}

	if err := os.WriteFile(g.OutputPath, []byte(merged), 0o644); err != nil {
		return false, fmt.Sprintf("Error writing %s: %v", g.OutputPath, err)
	}

	action := "Updated"
	if !exists || mode == ModeOverwrite {
		action = "Created"
	}
	return true, fmt.Sprintf("%s %s successfully!", action, g.OutputPath)
}
