// Package cli implements the cobra-based command line for exitcodes.
//
// The program has a single root command with no subcommands. This file
// defines that command, its usage text, and the translation of errors
// into process exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/exitcodes/internal/model"
	"github.com/shinji-kodama/exitcodes/internal/report"
	"github.com/shinji-kodama/exitcodes/internal/strerror"
)

// rootFlags holds the flag values for the root command.
// These are bound to cobra flags in newRootCommand.
type rootFlags struct {
	// maxCode is the upper bound for range mode, set with -n.
	maxCode maxCodeValue
}

// NewRootCommand creates and configures the root cobra command, resolving
// messages through the host platform.
func NewRootCommand() *cobra.Command {
	return newRootCommand(strerror.Default)
}

// newRootCommand builds the root command around resolver r. Tests pass a
// stub resolver so output does not depend on the host's errno tables.
func newRootCommand(r strerror.Resolver) *cobra.Command {
	flags := &rootFlags{maxCode: model.DefaultMaxCode}

	rootCmd := &cobra.Command{
		Use:   "exitcodes [OPTION]... [CODE]",
		Short: "Print the message for an OS error code",
		Long: `Print the message the operating system associates with an error code.

With CODE, print the line for that code only. Without it, print one line
per code from 1 to the value of -n.`,

		// Any number of operands is accepted; only the first is used.
		Args: cobra.ArbitraryArgs,

		// The usage line already names the options.
		DisableFlagsInUseLine: true,

		// SilenceUsage and SilenceErrors hand all error output to Run,
		// which writes the message and the usage summary to stderr.
		SilenceUsage:  true,
		SilenceErrors: true,

		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := model.NewParsedArguments()
			parsed.MaxCode = flags.maxCode.Int()
			parsed.Args = args
			return report.NewDriver(r).Run(cmd.OutOrStdout(), parsed)
		},
	}

	// Registering "help" ourselves keeps cobra from adding its default
	// flag with a different description.
	rootCmd.Flags().BoolP("help", "h", false, "display this help message")
	// pflag requires a long name; checkShortOnlyFlags rejects "--n".
	rootCmd.Flags().VarP(&flags.maxCode, "n", "n", "max exit code")

	// Every flag parsing failure (unknown option, missing value) is a
	// usage error.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.NewUsageError(err)
	})

	// Help goes to stdout, usage after an error goes to stderr.
	rootCmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		_, _ = io.WriteString(c.OutOrStdout(), usageText(c))
	})
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		_, err := io.WriteString(c.ErrOrStderr(), usageText(c))
		return err
	})

	return rootCmd
}

// usageText renders the usage summary shared by -h and error output.
//
//	Usage: exitcodes [OPTION]... [CODE]
//	  -h, --help   display this help message
//	  -n VALUE     max exit code (default 130)
func usageText(c *cobra.Command) string {
	return fmt.Sprintf("Usage: %s\n"+
		"  -h, --help   display this help message\n"+
		"  -n VALUE     max exit code (default %d)\n",
		c.UseLine(), model.DefaultMaxCode)
}

// Run executes rootCmd with args (the argument vector without the
// program name) and returns the exit code the process should end with.
// Errors are written to the command's stderr.
func Run(rootCmd *cobra.Command, args []string) model.ExitCode {
	// cobra falls back to os.Args when the slice is nil.
	if args == nil {
		args = []string{}
	}

	err := checkShortOnlyFlags(args)
	if err == nil {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	}
	if err == nil {
		return model.ExitSuccess
	}

	stderr := rootCmd.ErrOrStderr()

	// errors.As also finds a CLIError that was wrapped further up.
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(stderr, cliErr.Error())
		if cliErr.Usage {
			_ = rootCmd.Usage()
		}
		return cliErr.Code
	}

	// Generic error — exit with code 1.
	printError(stderr, err.Error())
	return model.ExitGeneralError
}

// Execute runs the root command and exits the process with a non-zero
// status on failure. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if code := Run(rootCmd, os.Args[1:]); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// printError writes "Error: <message>" to w.
func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", message)
}
