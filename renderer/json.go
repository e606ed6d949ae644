package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/rawasm/assembler"
)

// JSONRenderer renders diagnostics in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(diagnostics []*assembler.Diagnostic, output io.Writer) error {
	if diagnostics == nil {
		diagnostics = []*assembler.Diagnostic{}
	}
	return json.NewEncoder(output).Encode(diagnostics)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
