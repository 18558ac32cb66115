package cmd

import (
	"errors"
	"fmt"

	"github.com/chris-regnier/moodctl/internal/storage"
)

// Exit codes.
const (
	ExitUser    = 1
	ExitStorage = 2
	ExitEditor  = 3
)

// userError marks a failure caused by input rather than the system.
type userError struct {
	err error
}

func (e userError) Error() string { return e.err.Error() }
func (e userError) Unwrap() error { return e.err }

func userErrorf(format string, args ...any) error {
	return userError{err: fmt.Errorf(format, args...)}
}

// editorError marks a failure to launch or run the editor.
type editorError struct {
	err error
}

func (e editorError) Error() string { return "editor error: " + e.err.Error() }
func (e editorError) Unwrap() error { return e.err }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	var ue userError
	var ee editorError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ee):
		return ExitEditor
	case errors.As(err, &ue), errors.Is(err, storage.ErrValidation):
		return ExitUser
	case errors.Is(err, storage.ErrStorage):
		return ExitStorage
	default:
		return ExitUser
	}
}
