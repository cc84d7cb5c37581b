package format

import (
	"encoding/json"
	"io"

	"go.followtheprocess.codes/jot/internal/syntax/ast"
)

// JSONExporter is an [Exporter] that transforms a parsed program into a
// JSON document.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given
// program as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, program ast.Program) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(program)
}
