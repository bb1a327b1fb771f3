// Package model — types.go holds ParsedArguments and the exit code model.
//
// ParsedArguments is the only domain object. It is constructed once from
// the process argument vector and discarded when the run ends.
package model

import "fmt"

// DefaultMaxCode is the highest code printed in range mode when -n is
// not given.
const DefaultMaxCode = 130

// ParsedArguments holds the result of command line parsing.
//
// MaxCode is not range checked. Zero or a negative value makes range
// mode print nothing.
type ParsedArguments struct {
	// MaxCode is the inclusive upper bound for range mode.
	MaxCode int

	// Args holds the positional (non-option) arguments in order.
	Args []string
}

// NewParsedArguments returns ParsedArguments with the default maximum.
func NewParsedArguments() ParsedArguments {
	return ParsedArguments{MaxCode: DefaultMaxCode}
}

// HasCode reports whether a positional CODE argument was supplied.
// Only the first positional argument is ever consulted.
func (p ParsedArguments) HasCode() bool {
	return len(p.Args) > 0
}

// CodeArg returns the first positional argument, or "" if there is none.
func (p ParsedArguments) CodeArg() string {
	if !p.HasCode() {
		return ""
	}
	return p.Args[0]
}

// ExitCode defines the process exit codes of the CLI.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully,
	// including when help was requested.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates a usage error or a failure to write
	// the report to standard output.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// Usage requests that the usage summary follows the message on stderr.
	Usage bool
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// NewUsageError wraps a command line parsing error. The message is the
// parser's own text; the usage summary is printed after it.
func NewUsageError(err error) *CLIError {
	return &CLIError{Code: ExitGeneralError, Message: err.Error(), Usage: true}
}

// NewWriteError wraps a failure to write or flush standard output.
func NewWriteError(err error) *CLIError {
	return WrapCLIError(ExitGeneralError, "write error", err)
}
