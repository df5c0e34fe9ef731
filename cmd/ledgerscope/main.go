package main

import (
	"os"

	"github.com/mystra-dev/ledgerscope/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
