// Package cli — flags.go defines custom pflag values.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/shinji-kodama/exitcodes/internal/model"
	"github.com/shinji-kodama/exitcodes/internal/strerror"
)

// shortOnlyFlags lists flags that exist only in their single-dash form.
// pflag registers a long name for every flag, so "--n" would otherwise
// be accepted.
var shortOnlyFlags = []string{"n"}

// checkShortOnlyFlags scans args the way pflag will and returns a usage
// error for the long spelling of a short-only flag. A token consumed as
// the value of -n is skipped, and "--" ends the scan.
func checkShortOnlyFlags(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return nil

		case strings.HasPrefix(arg, "--"):
			name, _, _ := strings.Cut(arg[2:], "=")
			for _, short := range shortOnlyFlags {
				if name == short {
					return model.NewUsageError(fmt.Errorf("unknown flag: --%s", name))
				}
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// In a cluster such as "-hn", a trailing n takes the next
			// token as its value.
			if strings.IndexByte(arg[1:], 'n') == len(arg)-2 {
				i++
			}
		}
	}
	return nil
}

// maxCodeValue is the pflag.Value behind -n. It converts its argument
// with strerror.Atoi, so any string is accepted: "abc" sets 0, "12x"
// sets 12, and a negative number is kept as is.
type maxCodeValue int

var _ pflag.Value = (*maxCodeValue)(nil)

// Set stores the best-effort integer value of s. It never fails.
func (v *maxCodeValue) Set(s string) error {
	*v = maxCodeValue(strerror.Atoi(s))
	return nil
}

// String returns the current value in decimal.
func (v *maxCodeValue) String() string {
	return strconv.Itoa(int(*v))
}

// Type names the value in pflag's generated help.
func (v *maxCodeValue) Type() string {
	return "int"
}

// Int returns the value as a plain int.
func (v *maxCodeValue) Int() int {
	return int(*v)
}
