package main

import (
	"os"

	"github.com/solonmacro/solonmacro.github.io/cmd/solon/commands"
)

// main is the entry point for the SolonInsight CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
