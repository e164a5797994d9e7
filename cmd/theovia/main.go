package main

import (
	"os"

	"TheoVia/cmd/theovia/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
