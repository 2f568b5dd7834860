package main

import (
	"os"

	"github.com/finsum-dev/finsum/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
