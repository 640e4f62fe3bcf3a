package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Error reports a failed child process. Stderr is kept verbatim.
type Error struct {
	Command string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	if strings.TrimSpace(e.Stderr) == "" {
		return fmt.Sprintf("command '%s' failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command '%s' failed: %v\n%s", e.Command, e.Err, e.Stderr)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments and returns its stdout.
// Arguments are passed as a vector, never through a shell.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &Error{
			Command: CommandLine(name, args...),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}

	return stdout.String(), nil
}

// CommandLine renders a command for diagnostics
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
