//go:build unix

package strerror

import (
	"strings"

	"golang.org/x/sys/unix"
)

// namedMessages covers errnos that x/sys/unix can name but that the
// syscall message table has no text for. Keys are errno names, so the
// entries apply whatever the number is on a given architecture.
var namedMessages = map[string]string{
	"EHWPOISON": "Memory page has hardware error",
}

// hostMessage resolves code through the errno tables of x/sys/unix.
// A code with no errno name on this platform is unknown.
func hostMessage(code int) string {
	if code == 0 {
		return successMessage
	}
	if code < 0 {
		return unknownMessage(code)
	}

	errno := unix.Errno(code)
	name := unix.ErrnoName(errno)
	if name == "" {
		return unknownMessage(code)
	}

	msg := errno.Error()
	// syscall.Errno falls back to "errno N" when its table has a gap.
	if strings.HasPrefix(msg, "errno ") {
		if named, ok := namedMessages[name]; ok {
			return named
		}
		return unknownMessage(code)
	}
	return capitalize(msg)
}
