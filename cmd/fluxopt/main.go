// Command fluxopt solves the flux balance problem of the compiled-in network
// once and prints the result.
package main

import (
	"os"
)

func main() {
	cmd, err := NewRootCmd(os.Stdout, os.Stderr)
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		printErr(os.Stderr, err)
		os.Exit(1)
	}
}
