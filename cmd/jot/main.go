package main

import (
	"context"
	"os"

	"go.followtheprocess.codes/jot/internal/cmd"
	"go.followtheprocess.codes/msg"
)

func main() {
	if err := run(); err != nil {
		msg.Error("%s", err)
		os.Exit(1)
	}
}

func run() error {
	root, err := cmd.Build()
	if err != nil {
		return err
	}

	return root.Execute(context.Background())
}
