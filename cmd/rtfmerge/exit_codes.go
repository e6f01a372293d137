package main

import "errors"

// Exit codes follow sysexits-lite conventions: 0 success, 1 runtime
// failure, 2 bad invocation.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, errNoInputs):
		return exitUsage
	default:
		return exitError
	}
}
