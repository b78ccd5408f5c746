package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

func TestLocalRunnerCapturesOutput(t *testing.T) {
	runner := NewLocalRunner()
	result, err := runner.Run(context.Background(), domain.InvocationStep{
		Bin:  "/bin/sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Outcome != domain.OutcomeSucceeded {
		t.Errorf("outcome = %v, want OutcomeSucceeded", result.Outcome)
	}
	if result.Stdout != "out\n" {
		t.Errorf("stdout = %q, want %q", result.Stdout, "out\n")
	}
	if result.Stderr != "err\n" {
		t.Errorf("stderr = %q, want %q", result.Stderr, "err\n")
	}
}

func TestLocalRunnerNonzeroExit(t *testing.T) {
	runner := NewLocalRunner()
	result, err := runner.Run(context.Background(), domain.InvocationStep{
		Bin:  "/bin/sh",
		Args: []string{"-c", "echo broken >&2; exit 3"},
	})
	var procErr *domain.ProcessError
	if !errors.As(err, &procErr) {
		t.Fatalf("error = %v, want *domain.ProcessError", err)
	}
	if procErr.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", procErr.ExitCode)
	}
	if procErr.Stderr != "broken\n" {
		t.Errorf("captured stderr = %q, want %q", procErr.Stderr, "broken\n")
	}
	if result.Outcome != domain.OutcomeFatal {
		t.Errorf("outcome = %v, want OutcomeFatal", result.Outcome)
	}
}

func TestLocalRunnerOverlayEnvironment(t *testing.T) {
	runner := NewLocalRunner()
	result, err := runner.Run(context.Background(), domain.InvocationStep{
		Bin:  "/bin/sh",
		Args: []string{"-c", "echo $WINEPREFIX"},
		Env:  []string{"WINEPREFIX=/prefixes/test", "PATH=/bin"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stdout != "/prefixes/test\n" {
		t.Errorf("stdout = %q, want overlay WINEPREFIX", result.Stdout)
	}
}

func TestPathLocator(t *testing.T) {
	locator := PathLocator{}
	if _, ok := locator.Locate("sh"); !ok {
		t.Error("expected sh to be found on PATH")
	}
	if _, ok := locator.Locate("definitely-not-a-binary-name"); ok {
		t.Error("expected lookup miss for a nonexistent binary")
	}
}
