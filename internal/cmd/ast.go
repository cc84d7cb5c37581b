package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/jot/internal/jot"
)

const astLong = `
The ast command parses a script and prints its syntax tree without
executing it, useful for debugging and editor tooling.

The default format is canonical jot source, which normalises the
script's layout. Pass '--format json' or '--format yaml' for a
structured dump including token offsets.
`

// ast returns the jot ast subcommand.
func ast() (*cli.Command, error) {
	var (
		file    string
		options jot.ExportOptions
	)

	return cli.New(
		"ast",
		cli.Short("Show the syntax tree for a script"),
		cli.Long(astLong),
		cli.Arg(&file, "file", "Path to the script"),
		cli.Flag(&options.Format, "format", 'f', "Output format, one of (jot|json|yaml)", cli.FlagDefault("jot")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(options.Debug, cmd)
			if err != nil {
				return err
			}

			return app.Export(ctx, file, options)
		}),
	)
}
