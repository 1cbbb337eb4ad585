// Package main provides the contactbook command-line assistant.
package main

import (
	"os"

	"github.com/leapstack-labs/contactbook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
