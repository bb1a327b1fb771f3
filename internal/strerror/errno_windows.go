//go:build windows

package strerror

import "golang.org/x/sys/windows"

// hostMessage resolves code through FormatMessage. Codes the system has
// no text for come back as "winapi error #N", which is kept as is.
func hostMessage(code int) string {
	if code == 0 {
		return successMessage
	}
	if code < 0 {
		return unknownMessage(code)
	}
	return windows.Errno(code).Error()
}
