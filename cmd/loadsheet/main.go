// Package main provides the entry point for the loadsheet CLI.
package main

import (
	"os"

	"github.com/flightprep/loadsheet/cmd/loadsheet/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
