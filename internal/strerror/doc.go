// Package strerror maps operating system error codes to the descriptive
// messages the host platform defines for them.
//
// On Unix systems the lookup is delegated to golang.org/x/sys/unix, whose
// tables are generated from the platform's errno headers. On Windows it is
// delegated to golang.org/x/sys/windows, which asks the system via
// FormatMessage. Platforms with neither facility fall back to a static
// table of the classic POSIX codes.
//
// The exact wording of a message is platform specific. Codes the platform
// does not know are not errors: they resolve to "Unknown error N".
//
// The package also exports Atoi, the best-effort integer conversion used
// for every numeric command line operand.
package strerror
