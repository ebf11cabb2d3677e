// Package main is the entry point for the ssot CLI tool.
package main

import (
	"os"

	"github.com/aldsworth/ssot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
