package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdtype/internal/configloader"
)

// Exit codes for mdtype.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitUnterminated indicates a strict scan ended with open markup.
	ExitUnterminated = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrUnterminated):
		return ExitUnterminated
	case errors.Is(err, ErrInteractiveInput):
		return ExitInvalidUsage
	case errors.As(err, &validationErr), errors.Is(err, errLoadConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission), errors.Is(err, errReadInput):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
