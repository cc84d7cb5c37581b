package jot_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.followtheprocess.codes/jot/internal/config"
	"go.followtheprocess.codes/jot/internal/jot"
)

var update = flag.Bool("update", false, "Update testscript snapshots")

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"run": func() {
			app := jot.New(config.Default(), os.Stdin, os.Stdout, os.Stderr)

			err := app.Run(context.Background(), os.Args[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
		"check": func() {
			app := jot.New(config.Default(), os.Stdin, os.Stdout, os.Stderr)

			err := app.Check(context.Background(), jot.CheckOptions{Path: os.Args[1]})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
		"ast": func() {
			app := jot.New(config.Default(), os.Stdin, os.Stdout, os.Stderr)

			err := app.Export(context.Background(), os.Args[2], jot.ExportOptions{Format: os.Args[1]})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
		"repl": func() {
			app := jot.New(config.Default(), os.Stdin, os.Stdout, os.Stderr)

			err := app.REPL(context.Background())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		UpdateScripts:       *update,
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}
