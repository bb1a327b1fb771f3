//go:build unix

package strerror

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// TestHostMessage_Unix checks the x/sys/unix backed resolver.
func TestHostMessage_Unix(t *testing.T) {
	// ENOENT is 2 on every Unix.
	assert.Equal(t, "No such file or directory", hostMessage(2))
	assert.Equal(t, "Operation not permitted", hostMessage(1))

	// Far past any errno table.
	assert.Equal(t, "Unknown error 100000", hostMessage(100000))
}

// TestHostMessage_LinuxMatchesPOSIXTable verifies the static fallback
// table uses the same wording as glibc for the codes it covers.
func TestHostMessage_LinuxMatchesPOSIXTable(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("glibc wording is only guaranteed on linux")
	}
	for code, want := range POSIXTable {
		assert.Equal(t, want, hostMessage(code), "code %d", code)
	}
}

// TestHostMessage_NoRawErrnoFallback verifies that gaps in the syscall
// message table never surface as "errno N".
func TestHostMessage_NoRawErrnoFallback(t *testing.T) {
	for code := 1; code <= 300; code++ {
		msg := hostMessage(code)
		assert.False(t, strings.HasPrefix(strings.ToLower(msg), "errno "), "code %d: %q", code, msg)
	}
}

// TestHostMessage_EHWPOISON checks the named override on Linux, where
// the syscall table has no text for this errno.
func TestHostMessage_EHWPOISON(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("EHWPOISON is linux only")
	}
	for code := 1; code <= 300; code++ {
		if unix.ErrnoName(unix.Errno(code)) == "EHWPOISON" {
			assert.Equal(t, "Memory page has hardware error", hostMessage(code))
			return
		}
	}
	t.Fatal("EHWPOISON not found in errno range 1..300")
}
