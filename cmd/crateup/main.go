// Package main is the entry point for the crateup CLI.
package main

import (
	"os"

	"crateup/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
