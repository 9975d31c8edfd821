package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/cruxpack/internal"
	"github.com/cruciblehq/cruxpack/internal/cli"
)

// The entry point for cruxpack.
//
// Initializes logging from build-time defaults and executes the root command.
// Any error is logged and reported as a non-zero exit status.
func main() {
	slog.SetDefault(cli.NewLogger(os.Stderr))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("cruxpack is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(internal.ExitFailure)
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
