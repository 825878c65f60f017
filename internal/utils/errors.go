package utils

import (
	"fmt"
	"os"

	"github.com/jeeftor/screencalc/internal/logging"
)

// ErrorExitCode represents different types of errors with their exit codes
type ErrorExitCode int

const (
	ExitCodeGeneral    ErrorExitCode = 1
	ExitCodeValidation ErrorExitCode = 1
	ExitCodeFileSystem ErrorExitCode = 3
)

// FatalError handles fatal errors with consistent logging and exit behavior
func FatalError(err error, context string) {
	logging.UserErrorf("%s: %v", context, err)
	os.Exit(int(ExitCodeGeneral))
}

// ValidationError handles input validation errors
func ValidationError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(int(ExitCodeValidation))
}

// FileSystemError handles file operation errors
func FileSystemError(operation string, path string, err error) {
	logging.UserErrorf("Failed to %s '%s': %v", operation, path, err)
	os.Exit(int(ExitCodeFileSystem))
}

// CheckError is a convenience function for common error checking patterns
func CheckError(err error, context string) {
	if err != nil {
		FatalError(err, context)
	}
}
