package format

import (
	"io"

	"go.followtheprocess.codes/jot/internal/syntax/ast"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that transforms a parsed program into a
// YAML document.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given
// program as a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, program ast.Program) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	return encoder.Encode(program)
}
