// Package main is the entry point for the track CLI.
package main

import (
	"fmt"
	"os"

	"github.com/trackctl/track/internal/app"
	"github.com/trackctl/track/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	container.Logger.Debug("initialized",
		"data_dir", container.Config.DataDir)

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
