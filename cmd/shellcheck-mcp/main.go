package main

import (
	"os"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
