// Package main provides the leapudf CLI.
package main

import (
	"os"

	_ "github.com/leapstack-labs/leapudf/internal/builtin"
	"github.com/leapstack-labs/leapudf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
