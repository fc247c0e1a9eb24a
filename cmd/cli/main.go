// Package main is the entry point for the bitterroot-intake CLI.
package main

import (
	"os"

	"bitterroot-intake/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
