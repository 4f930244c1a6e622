package main

import (
	"os"

	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
