// Package renderer provides a way to render assembler diagnostics in different formats.
package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/rawasm/assembler"
)

// Renderer defines the interface for rendering diagnostics in different formats.
type Renderer interface {
	// Render takes a list of diagnostics and outputs them in the desired format to the provided writer.
	Render(diagnostics []*assembler.Diagnostic, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
