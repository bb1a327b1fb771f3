// Package model defines the value types shared by the exitcodes CLI.
//
// This package contains pure data structures with no external dependencies.
// ParsedArguments is built once per run from the command line and is never
// persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
