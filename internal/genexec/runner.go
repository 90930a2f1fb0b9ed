// Package genexec runs a planned generator invocation as a child process.
package genexec

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/genplan/internal/planner"
)

// ExitError reports a generator that ran but exited non-zero.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("generator exited with code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Runner provides an abstraction for running the generator.
type Runner interface {
	// Run executes cmd, streaming its output to stdout and stderr.
	Run(ctx context.Context, cmd *planner.PlannedCommand, stdout, stderr io.Writer) error
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the generator and waits for it. Cancelling ctx kills the process.
func (r *ExecRunner) Run(ctx context.Context, cmd *planner.PlannedCommand, stdout, stderr io.Writer) error {
	c := exec.CommandContext(ctx, cmd.Executable, cmd.Arguments...)
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "generator interrupted")
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode(), Err: err}
		}
		return errors.Wrap(err, "failed to start generator")
	}
	return nil
}

// FakeRunner implements Runner for tests. It records every call and invokes
// OnRun, if set, in place of a process.
type FakeRunner struct {
	mu    sync.Mutex
	calls []*planner.PlannedCommand

	OnRun func(cmd *planner.PlannedCommand) error
}

// NewFakeRunner creates a FakeRunner that succeeds without side effects.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// Run records cmd and calls OnRun.
func (r *FakeRunner) Run(ctx context.Context, cmd *planner.PlannedCommand, stdout, stderr io.Writer) error {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if r.OnRun != nil {
		return r.OnRun(cmd)
	}
	return nil
}

// Calls returns the commands run so far.
func (r *FakeRunner) Calls() []*planner.PlannedCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*planner.PlannedCommand(nil), r.calls...)
}
