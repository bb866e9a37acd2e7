package main

import (
	"os"

	"github.com/soopyv/bazscan/cmd/bazscan/commands"
)

// main is the entry point for the bazscan CLI.
// Exit code 0 means a ranked result (possibly empty) was produced; 1 means
// no snapshot could be obtained.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
