package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
)

const runLong = `
The file argument is the path to a .jot script. If it is omitted, the
current directory is scanned recursively for .jot files and you will
be asked to pick one.
`

// run returns the jot run subcommand.
func run() (*cli.Command, error) {
	var (
		file  string
		debug bool
	)

	return cli.New(
		"run",
		cli.Short("Execute a jot script"),
		cli.Long(runLong),
		cli.Arg(&file, "file", "Path to the script", cli.ArgDefault("")),
		cli.Flag(&debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(debug, cmd)
			if err != nil {
				return err
			}

			return app.Run(ctx, file)
		}),
	)
}
