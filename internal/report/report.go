// Package report formats "code: message" lines for the exitcodes CLI.
//
// A Driver prints either a single line for one code or one line per
// code from 1 to a maximum. Output is buffered and flushed once, so a
// failed write surfaces as a single error at the end of the run.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shinji-kodama/exitcodes/internal/model"
	"github.com/shinji-kodama/exitcodes/internal/strerror"
)

// Line formats one report line: the code right-aligned in a field of
// width 3, a colon and a space, the message, and a newline.
//
// Example:
//
//	Line(2, "No such file or directory") → "  2: No such file or directory\n"
func Line(code int, message string) string {
	return fmt.Sprintf("%3d: %s\n", code, message)
}

// Driver resolves codes and writes report lines.
type Driver struct {
	resolver strerror.Resolver
}

// NewDriver creates a Driver backed by r. A nil r selects
// strerror.Default.
func NewDriver(r strerror.Resolver) *Driver {
	if r == nil {
		r = strerror.Default
	}
	return &Driver{resolver: r}
}

// Single writes the line for code.
func (d *Driver) Single(w io.Writer, code int) error {
	_, err := io.WriteString(w, Line(code, d.resolver.Message(code)))
	return err
}

// Range writes one line per code from 1 through maxCode inclusive, in
// ascending order. Nothing is written when maxCode is below 1.
func (d *Driver) Range(w io.Writer, maxCode int) error {
	return d.rangeFrom(w, 1, maxCode)
}

// rangeFrom writes the lines for first..last inclusive. The loop stops at
// last instead of testing code <= last, so last == math.MaxInt cannot wrap.
func (d *Driver) rangeFrom(w io.Writer, first, last int) error {
	if first > last {
		return nil
	}
	for code := first; ; code++ {
		if err := d.Single(w, code); err != nil {
			return err
		}
		if code == last {
			return nil
		}
	}
}

// Run prints the report selected by args. When a CODE operand is present
// only that code is printed and MaxCode is ignored; otherwise the full
// range is printed.
//
// Any write or flush failure is returned as a model.CLIError built by
// model.NewWriteError.
func (d *Driver) Run(w io.Writer, args model.ParsedArguments) error {
	bw := bufio.NewWriter(w)

	var err error
	if args.HasCode() {
		err = d.Single(bw, strerror.Atoi(args.CodeArg()))
	} else {
		err = d.Range(bw, args.MaxCode)
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return model.NewWriteError(err)
	}
	return nil
}
