// Package main is the entry point for the exitcodes CLI.
//
// The binary prints the message the operating system associates with an
// error code, for one code or for the range 1..N. It delegates all
// functionality to the internal/cli package, which defines the cobra
// command.
package main

import (
	"github.com/shinji-kodama/exitcodes/internal/cli"
)

func main() {
	// Execute handles error formatting and exit codes.
	cli.Execute(cli.NewRootCommand())
}
