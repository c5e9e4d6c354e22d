// Where: internal/awscli/runner.go
// What: External process execution for the credential tool.
// Why: Isolate os/exec behind a port so command handlers stay testable.
package awscli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// LaunchError reports a credential tool that could not be started at all.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports a credential tool run that terminated with a non-zero
// exit status. Its output is never parsed.
type ExitError struct {
	Binary string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.Code)
}

// CommandRunner executes an external command and returns its standard output.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the os/exec implementation of CommandRunner. The child
// inherits stdin and stderr so the tool can interact with the terminal;
// only stdout is captured.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{Binary: name, Code: exitErr.ExitCode()}
		}
		return nil, &LaunchError{Binary: name, Err: err}
	}
	return out, nil
}
