// Package main is the entry point for the bytesize CLI.
package main

import (
	"os"

	"bytesize/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
