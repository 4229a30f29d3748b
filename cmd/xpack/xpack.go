package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/xpack/internal"
	"github.com/cruciblehq/xpack/internal/cli"
)

// The entry point for xpack.
//
// Initializes logging, records startup information, and executes the root
// command. Any error, including a single failed target, exits with status 1
// after every target has been reported.
func main() {
	slog.SetDefault(internal.NewLogger(os.Stderr))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("xpack is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
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
