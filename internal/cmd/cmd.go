// Package cmd implements jot's CLI.
package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/jot/internal/config"
	"go.followtheprocess.codes/jot/internal/jot"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the jot CLI.
func Build() (*cli.Command, error) {
	var debug bool

	return cli.New(
		"jot",
		cli.Short("A small scripting language"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Start an interactive session", "jot"),
		cli.Example("Execute a script", "jot run ./hello.jot"),
		cli.Example("Check a directory of scripts for syntax errors", "jot check ./scripts"),
		cli.Example("Show the syntax tree for a script", "jot ast ./hello.jot --format json"),
		cli.Flag(&debug, "debug", 'd', "Enable debug logging"),
		cli.SubCommands(run, check, ast),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(debug, cmd)
			if err != nil {
				return err
			}

			return app.REPL(ctx)
		}),
	)
}

// newApp loads config and constructs the application, the debug flag
// takes precedence over the config file.
func newApp(debug bool, cmd *cli.Command) (jot.Jot, error) {
	cfg, err := config.Load(config.File)
	if err != nil {
		return jot.Jot{}, err
	}

	cfg.Debug = cfg.Debug || debug

	return jot.New(cfg, cmd.Stdin(), cmd.Stdout(), cmd.Stderr()), nil
}
