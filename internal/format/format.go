// Package format renders a parsed jot program into external formats.
//
// The [Exporter] interface does this in a format-agnostic way, with built in
// exporters for canonical jot source, JSON and YAML. The structured formats
// expose the full syntax tree including token offsets, useful for editor
// tooling and debugging the parser.
package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/jot/internal/syntax/ast"
)

// Exporter is the interface defining a mechanism for exporting a parsed
// jot program into an external format.
type Exporter interface {
	// Export writes the program to w in the exporter's format.
	Export(w io.Writer, program ast.Program) error
}

// Get returns the [Exporter] registered under the given name.
func Get(name string) (Exporter, error) {
	switch name {
	case "jot":
		return TextExporter{}, nil
	case "json":
		return JSONExporter{}, nil
	case "yaml":
		return YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("invalid format %q, allowed values are 'jot', 'json', 'yaml'", name)
	}
}
