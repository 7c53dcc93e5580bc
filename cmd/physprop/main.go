package main

import (
	"os"

	"physprop/cmd/physprop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
