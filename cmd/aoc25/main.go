// Package main provides the aoc25 command.
package main

import (
	"os"

	"github.com/katalvlaran/aoc25/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
