package cli

import (
	"errors"

	"github.com/deisrc/deisrc/internal/activate"
	"github.com/deisrc/deisrc/internal/store"
)

// Sentinel errors of the domain packages, re-exported for callers of the CLI.
var (
	ErrNotADirectory   = store.ErrNotADirectory
	ErrMissingName     = store.ErrMissingName
	ErrAlreadyExists   = store.ErrAlreadyExists
	ErrInvalidName     = store.ErrInvalidName
	ErrNotFound        = activate.ErrNotFound
	ErrUnsafeOverwrite = activate.ErrUnsafeOverwrite
)

var (
	// ErrHelp is returned after help was printed.
	ErrHelp = errors.New("help requested")
	// ErrUsage is returned for arguments that could not be parsed.
	ErrUsage = errors.New("invalid usage")
)

// reportedError marks an error whose message has already been shown to the
// user.
type reportedError struct {
	err error
}

func reported(err error) error {
	return &reportedError{err: err}
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
