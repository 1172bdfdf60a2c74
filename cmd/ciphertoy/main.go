package main

import (
	"os"

	"ciphertoy/cmd/ciphertoy/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
