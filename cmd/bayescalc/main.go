// Package main is the entry point for the bayescalc CLI.
package main

import (
	"os"

	"bayes-calc/cmd/bayescalc/cmd"
	"bayes-calc/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
