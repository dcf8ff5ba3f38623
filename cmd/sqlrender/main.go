// Package main provides the sqlrender CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlrender/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
