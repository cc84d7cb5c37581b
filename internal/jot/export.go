package jot

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.followtheprocess.codes/jot/internal/format"
	"go.followtheprocess.codes/jot/internal/syntax/parser"
)

// ExportOptions are the options passed to the ast subcommand.
type ExportOptions struct {
	// Format is the format of the export e.g. json, yaml.
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Export implements the ast subcommand, parsing a script and writing
// its syntax tree to stdout in the requested format.
func (j Jot) Export(ctx context.Context, file string, options ExportOptions) error {
	logger := j.logger.Prefixed("ast")
	logger.Debug("Export configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	exporter, err := format.Get(options.Format)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	p := parser.New(file, src)

	program, err := p.Parse()
	if err != nil {
		j.reportDiagnostics(p.Diagnostics())
		return err
	}

	logger.Debug("Parsed file successfully", slog.String("file", file))

	return exporter.Export(j.stdout, program)
}
