package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/jot/internal/syntax/ast"
)

// TextExporter is an [Exporter] that renders a program back to canonical
// jot source.
//
// The output is semantically identical to the input but normalised, one
// statement per line, consistent spacing, and for loops in their
// desugared while form.
type TextExporter struct{}

// Export implements [Exporter] for [TextExporter].
func (t TextExporter) Export(w io.Writer, program ast.Program) error {
	if _, err := fmt.Fprint(w, program.String()); err != nil {
		return fmt.Errorf("could not write program: %w", err)
	}

	return nil
}
