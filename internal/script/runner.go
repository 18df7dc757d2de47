// Package script executes AppleScript snippets through the osascript
// binary and provides the quoting rules for embedding text in them.
package script

import (
	"context"
	"io"
	"os/exec"
)

// Runner is an interface for locating and executing external commands.
// This allows mocking in tests without actually executing binaries.
type Runner interface {
	// LookPath finds the executable in PATH
	LookPath(file string) (string, error)
	// CommandContext creates a command that can be executed
	CommandContext(ctx context.Context, name string, args ...string) Command
}

// Command represents an executable command.
type Command interface {
	// SetStdin sets the stdin reader
	SetStdin(stdin io.Reader)
	// SetStdout sets the stdout writer
	SetStdout(stdout io.Writer)
	// SetStderr sets the stderr writer
	SetStderr(stderr io.Writer)
	// Run starts the command and waits for it to complete
	Run() error
}

// realRunner is the real implementation using os/exec.
type realRunner struct{}

// NewRunner creates a new real command runner.
func NewRunner() Runner {
	return &realRunner{}
}

func (r *realRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (r *realRunner) CommandContext(ctx context.Context, name string, args ...string) Command {
	return &realCommand{cmd: exec.CommandContext(ctx, name, args...)}
}

// realCommand wraps exec.Cmd to implement the Command interface.
type realCommand struct {
	cmd *exec.Cmd
}

func (c *realCommand) SetStdin(stdin io.Reader) {
	c.cmd.Stdin = stdin
}

func (c *realCommand) SetStdout(stdout io.Writer) {
	c.cmd.Stdout = stdout
}

func (c *realCommand) SetStderr(stderr io.Writer) {
	c.cmd.Stderr = stderr
}

func (c *realCommand) Run() error {
	return c.cmd.Run()
}
