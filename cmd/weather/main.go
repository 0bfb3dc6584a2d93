package main

import (
	"fmt"
	"os"

	"github.com/IllyaMoore/Weather-CLI/internal/cli"
)

var (
	// Set via ldflags during build.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	app := cli.NewApp()
	cmd := app.NewRootCommand(fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
