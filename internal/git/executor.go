package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

//go:generate mockgen -source=executor.go -destination=../mock/command_executor_mock.go -package=mock

// CommandExecutor runs prepared commands. The indirection exists so the
// runner's argument construction can be tested without a git binary.
type CommandExecutor interface {
	// ExecuteWithOutput runs cmd and returns its trimmed stdout. On a
	// non-zero exit the returned error carries the captured stderr.
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of [CommandExecutor] that
// delegates to os/exec.
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// ExecuteWithOutput implements [CommandExecutor].
func (e *ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%s: %s", strings.Join(cmd.Args, " "), detail)
	}

	return strings.TrimSpace(stdout.String()), nil
}
