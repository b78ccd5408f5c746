// Package executor runs planner invocations as local OS processes.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/Tatsh/mkwineprefix/internal/domain"
	"github.com/Tatsh/mkwineprefix/internal/ports"
)

// LocalRunner executes invocations synchronously with captured output.
type LocalRunner struct{}

// NewLocalRunner builds a runner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run implements ports.CommandRunner. Nonzero exits and spawn failures are
// returned as *domain.ProcessError carrying the captured output.
func (r *LocalRunner) Run(ctx context.Context, step domain.InvocationStep) (domain.ExecutionResult, error) {
	cmd := exec.CommandContext(ctx, step.Bin, step.Args...)
	if step.Env != nil {
		cmd.Env = step.Env
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.ExecutionResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		result.Outcome = domain.OutcomeSucceeded
		return result, nil
	}

	result.Outcome = domain.OutcomeFatal
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1
	}
	return result, &domain.ProcessError{
		Step:     step,
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		Err:      err,
	}
}

// PathLocator resolves binaries against PATH.
type PathLocator struct{}

// Locate implements ports.BinaryLocator.
func (PathLocator) Locate(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

var (
	_ ports.CommandRunner = (*LocalRunner)(nil)
	_ ports.BinaryLocator = PathLocator{}
)
