// Package main is the entry point for the dzl CLI.
package main

import (
	"os"

	"github.com/thoreinstein/dzl/cmd/dzl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.Report(os.Stderr, err))
	}
}
