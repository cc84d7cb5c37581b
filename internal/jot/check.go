package jot

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"go.followtheprocess.codes/jot/internal/syntax"
	"go.followtheprocess.codes/jot/internal/syntax/parser"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand, parsing every .jot file under
// the given path and reporting any syntax errors.
func (j Jot) Check(ctx context.Context, options CheckOptions) error {
	logger := j.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(options.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if filepath.Ext(path) == ".jot" {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")

		paths = []string{options.Path}
	}

	logger.Debug("Checking jot files given by path", slog.Int("number", len(paths)))

	var (
		mu          sync.Mutex
		diagnostics []syntax.Diagnostic
	)

	group := errgroup.Group{}

	for _, path := range paths {
		group.Go(func() error {
			found, err := checkFile(path)
			if err != nil {
				mu.Lock()
				diagnostics = append(diagnostics, found...)
				mu.Unlock()

				return err
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		j.reportDiagnostics(diagnostics)
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(j.stdout, "%s is valid", path)
	}

	return nil
}

// checkFile runs a parse check on a single file, returning the
// diagnostics gathered if it does not parse.
func checkFile(path string) ([]syntax.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	p := parser.New(path, src)

	// We don't actually care about the tree, just that it parses
	if _, err := p.Parse(); err != nil {
		return p.Diagnostics(), fmt.Errorf("%s contains syntax errors", path)
	}

	return nil, nil
}
