package jot

import (
	"bufio"
	"context"
	"fmt"

	"go.followtheprocess.codes/jot/internal/interp"
	"go.followtheprocess.codes/jot/internal/syntax/parser"
	"go.followtheprocess.codes/msg"
)

// REPL runs an interactive jot session.
//
// Each line read from stdin is parsed and executed against a persistent
// environment, so variables and functions defined on earlier lines stay
// in scope. Errors are reported and the session carries on, a bad line
// never kills the REPL.
func (j Jot) REPL(ctx context.Context) error {
	logger := j.logger.Prefixed("repl")
	logger.Debug("Starting interactive session")

	fmt.Fprintln(j.stdout, "Welcome to jot! Type a statement and press enter, Ctrl+D to exit.")

	interpreter := interp.New(j.stdout)
	env := interp.NewGlobalEnvironment(interp.DefaultGlobals())

	prompt := promptStyle.Text(j.cfg.REPL.Prompt)

	scanner := bufio.NewScanner(j.stdin)

	fmt.Fprint(j.stdout, prompt)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		p := parser.New("repl", []byte(scanner.Text()))

		program, err := p.Parse()
		if err != nil {
			j.reportDiagnostics(p.Diagnostics())
		} else if err := interpreter.Run(program, env); err != nil {
			msg.Ferror(j.stderr, "%s", err)
		}

		fmt.Fprint(j.stdout, prompt)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	// Leave the shell prompt on its own line after Ctrl+D
	fmt.Fprintln(j.stdout)

	return nil
}
