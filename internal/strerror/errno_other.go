//go:build !unix && !windows

package strerror

// hostMessage resolves code through POSIXTable on platforms without an
// errno facility (plan9, js, wasip1).
func hostMessage(code int) string {
	if code == 0 {
		return successMessage
	}
	return POSIXTable.Message(code)
}
