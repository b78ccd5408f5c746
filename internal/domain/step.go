package domain

import "strings"

// InvocationStep is one external process invocation emitted by the planner.
type InvocationStep struct {
	// Bin is the executable name or path.
	Bin string
	// Args is the full argument vector, not including Bin.
	Args []string
	// Env is the environment for the process in KEY=VALUE form. A nil Env
	// inherits the ambient process environment.
	Env []string
}

// String renders the step as a shell-like command line for log output.
func (s InvocationStep) String() string {
	return strings.Join(append([]string{s.Bin}, s.Args...), " ")
}

// StepOutcome classifies how an invocation ended.
type StepOutcome int

const (
	// OutcomeSucceeded means the process exited zero.
	OutcomeSucceeded StepOutcome = iota
	// OutcomeFatal means the process failed and the plan must abort.
	OutcomeFatal
	// OutcomeTolerated means the process failed but the plan continues.
	// Only the winetricks step is tolerated.
	OutcomeTolerated
)

// ExecutionResult captures the observable result of one invocation.
type ExecutionResult struct {
	Outcome  StepOutcome
	ExitCode int
	Stdout   string
	Stderr   string
}
