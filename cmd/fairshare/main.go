package main

import (
	"os"

	"github.com/fairshare-dev/fairshare/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
