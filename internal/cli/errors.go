package cli

import (
	"errors"
	"fmt"
	"io"

	"todo-notes/internal/config"
	"todo-notes/internal/listfile"
)

// Exit codes returned by Run.
const (
	ExitOK         = 0
	ExitError      = 1 // IO and anything unclassified
	ExitUsage      = 2 // bad flags, unknown commands, malformed arguments
	ExitCorrupt    = 3 // list file does not parse
	ExitOutOfRange = 4 // item number past the end of the list
	ExitConfig     = 5 // config dir or config.toml problems
)

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		oor   *listfile.IndexOutOfRangeError
		inv   *listfile.InvalidArgumentError
		cfg   *config.Error
		usage usageError
	)
	switch {
	case errors.Is(err, listfile.ErrCorruptList):
		return ExitCorrupt
	case errors.As(err, &oor):
		return ExitOutOfRange
	case errors.As(err, &inv), errors.As(err, &usage), errors.Is(err, config.ErrInvalidListName):
		return ExitUsage
	case errors.As(err, &cfg):
		return ExitConfig
	default:
		return ExitError
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
