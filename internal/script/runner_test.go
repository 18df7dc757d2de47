package script

import (
	"context"
	"errors"
	"io"
)

// mockRunner is a mock implementation of Runner for testing.
type mockRunner struct {
	lookPathFunc func(file string) (string, error)
	runErr       error
	commands     []*mockCommand
}

// mockCommand is a mock implementation of Command for testing.
type mockCommand struct {
	name   string
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	runErr error
	ran    bool
}

// LookPath implements Runner.
func (m *mockRunner) LookPath(file string) (string, error) {
	if m.lookPathFunc != nil {
		return m.lookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// CommandContext implements Runner.
func (m *mockRunner) CommandContext(ctx context.Context, name string, args ...string) Command {
	cmd := &mockCommand{name: name, args: args, runErr: m.runErr}
	m.commands = append(m.commands, cmd)
	return cmd
}

func (c *mockCommand) SetStdin(stdin io.Reader)   { c.stdin = stdin }
func (c *mockCommand) SetStdout(stdout io.Writer) { c.stdout = stdout }
func (c *mockCommand) SetStderr(stderr io.Writer) { c.stderr = stderr }

func (c *mockCommand) Run() error {
	c.ran = true
	return c.runErr
}

// errNotFound simulates a missing binary in PATH.
var errNotFound = errors.New("executable file not found in $PATH")
