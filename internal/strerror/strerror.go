package strerror

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"
)

// Resolver returns the descriptive message for an error code.
// Implementations never fail; unknown codes get a fallback message.
type Resolver interface {
	Message(code int) string
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(code int) string

// Message calls f(code).
func (f ResolverFunc) Message(code int) string {
	return f(code)
}

// Host resolves codes through the facility of the running platform.
type Host struct{}

// Message returns the platform's message for code.
func (Host) Message(code int) string {
	return hostMessage(code)
}

// Default is the resolver used by the CLI.
var Default Resolver = Host{}

// Table is a static code-to-message mapping. Codes missing from the
// table resolve to the unknown-code message.
type Table map[int]string

// Message returns t[code], or "Unknown error N" if code is absent.
func (t Table) Message(code int) string {
	if msg, ok := t[code]; ok {
		return msg
	}
	return unknownMessage(code)
}

// unknownMessage is the fallback text for codes the platform does not
// define. The wording matches glibc's strerror.
func unknownMessage(code int) string {
	return fmt.Sprintf("Unknown error %d", code)
}

// capitalize upper-cases the first rune of msg. Go's errno tables carry
// the lower-cased form of the C library strings.
func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

// Atoi converts s to an integer the way C's atoi does: leading white
// space is skipped, an optional sign is accepted, and digits are consumed
// up to the first non-digit. Input without a numeric prefix yields 0.
// Out-of-range values saturate at the 32-bit int bounds.
func Atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// int64 keeps the clamp representable where int is 32 bits.
	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
		if n > math.MaxInt32 {
			// -(MaxInt32+1) is still representable as MinInt32.
			n = math.MaxInt32 + 1
		}
	}

	if neg {
		return int(-n)
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// isSpace reports whether c is one of the C locale white space bytes.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
