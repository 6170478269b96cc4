package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output, kept apart from the structured debug logging.
// Info and success go to stdout so results can be piped; warnings and
// errors go to stderr.

var (
	userOut io.Writer = os.Stdout
	userErr io.Writer = os.Stderr
)

// SetUserOutput redirects user-facing output (used in tests).
func SetUserOutput(out, errOut io.Writer) {
	userOut = out
	userErr = errOut
}

// UserInfo prints an informational message.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(userOut, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(userOut, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning to stderr.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(userErr, "⚠ "+format+"\n", args...)
}

// UserError prints an error to stderr.
func UserError(format string, args ...any) {
	fmt.Fprintf(userErr, "✗ "+format+"\n", args...)
}
