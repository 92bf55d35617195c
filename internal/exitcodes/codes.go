package exitcodes

import (
	"fmt"
	"os"
)

// Exit codes for workspace-launcher. The launcher promises only two
// codes to callers: 0 for any branch that reached a handoff (or a
// clean no-op), 1 when it could not resolve its own environment or
// could not start the main application.
const (
	// Success indicates a successful terminal branch, including a
	// successful installer handoff.
	Success = 0

	// GeneralError indicates path-resolution failure or main-app
	// launch failure.
	GeneralError = 1
)

// Exit terminates the program with the given code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError prints error message to stderr and exits with the given code
func ExitWithError(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

// CodeForError returns the exit code for an error. ErrorWithCode
// carries an explicit code; anything else is a general error.
func CodeForError(err error) int {
	if err == nil {
		return Success
	}
	if ec, ok := err.(*ErrorWithCode); ok {
		return ec.Code
	}
	return GeneralError
}
