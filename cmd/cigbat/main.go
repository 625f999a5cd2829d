// Package main is the entry point for the cigbat CLI.
package main

import (
	"os"

	"github.com/emberlight/cigbat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
