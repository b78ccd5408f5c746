package domain

import (
	"errors"
	"fmt"
)

// ErrPrefixExists is returned when the target prefix directory already exists.
// It is raised before any external state is touched.
var ErrPrefixExists = errors.New("prefix already exists")

// ProcessError reports a fatal nonzero exit from an external invocation.
type ProcessError struct {
	Step     InvocationStep
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s: exit status %d", e.Step, e.ExitCode)
}

func (e *ProcessError) Unwrap() error { return e.Err }
