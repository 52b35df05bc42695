// Package main is the entry point for the pricing-configurator CLI.
package main

import (
	"os"

	"pricing-configurator/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
