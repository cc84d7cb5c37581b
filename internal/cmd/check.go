package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/jot/internal/jot"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a .jot file, then this file alone is checked for
syntax errors.

If it is a directory, this directory is scanned recursively for all
files with the '.jot' extension and any matching files are checked.
`

// check returns the jot check subcommand.
func check() (*cli.Command, error) {
	var options jot.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check jot scripts for syntax errors"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(options.Debug, cmd)
			if err != nil {
				return err
			}

			return app.Check(ctx, options)
		}),
	)
}
