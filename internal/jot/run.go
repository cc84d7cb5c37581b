package jot

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/jot/internal/interp"
	"go.followtheprocess.codes/jot/internal/syntax/parser"
)

// Run executes a jot script.
//
// If file is empty, the current directory is scanned for .jot files and
// the user is asked to pick one.
func (j Jot) Run(ctx context.Context, file string) error {
	logger := j.logger.Prefixed("run")

	if file == "" {
		picked, err := j.pick(ctx, ".")
		if err != nil {
			return err
		}

		file = picked
	}

	logger.Debug("Running script", slog.String("file", file))

	start := time.Now()

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

	logger.Debug("Parsed file successfully", slog.String("file", file), slog.Duration("took", time.Since(start)))

	interpreter := interp.New(j.stdout)
	env := interp.NewGlobalEnvironment(interp.DefaultGlobals())

	if err := interpreter.Run(program, env); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	logger.Debug("Executed successfully", slog.Duration("took", time.Since(start)))

	return nil
}

// pick scans dir recursively for .jot files and prompts the user to
// choose one.
func (j Jot) pick(ctx context.Context, dir string) (string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if filepath.Ext(path) == ".jot" {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("could not scan %s for scripts: %w", dir, err)
	}

	if len(files) == 0 {
		return "", fmt.Errorf("no .jot files found in %s", dir)
	}

	var file string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a script").
				Options(huh.NewOptions(files...)...).
				Value(&file),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("could not pick a script: %w", err)
	}

	return file, nil
}
