// Package jot implements the functionality of the interpreter, the CLI in
// package cmd is simply the entrypoint to exported functions and methods
// in this package.
package jot

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/jot/internal/config"
	"go.followtheprocess.codes/jot/internal/syntax"
	"go.followtheprocess.codes/log"
)

// Styles.
const (
	// promptStyle is the style used to render the REPL prompt.
	promptStyle = hue.Cyan | hue.Bold

	// positionStyle is the style used for source positions in diagnostics.
	positionStyle = hue.Bold

	// diagnosticStyle is the style used for diagnostic messages.
	diagnosticStyle = hue.Red
)

// Jot represents the jot program.
type Jot struct {
	stdin  io.Reader     // Input for the interactive session
	stdout io.Writer     // Normal program output is written here
	stderr io.Writer     // Logs and errors are written here
	logger *log.Logger   // The logger for the application
	cfg    config.Config // Loaded configuration
}

// New returns a new [Jot].
func New(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) Jot {
	level := log.LevelInfo
	if cfg.Debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(level), log.Prefix("jot"))

	return Jot{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		cfg:    cfg,
	}
}

// reportDiagnostics prints parse diagnostics to stderr, one per line in
// "file:line:col: message" form so editors and terminals can link to
// the offending source.
func (j Jot) reportDiagnostics(diagnostics []syntax.Diagnostic) {
	for _, diagnostic := range diagnostics {
		fmt.Fprintf(
			j.stderr,
			"%s: %s\n",
			positionStyle.Text(diagnostic.Position.String()),
			diagnosticStyle.Text(diagnostic.Msg),
		)
	}
}
