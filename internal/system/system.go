// Package system abstracts process execution so commands that hand
// control to ssh can be tested without spawning processes.
package system

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs a command and returns its combined output.
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)

	// ExecuteInteractive runs a command wired to the caller's terminal.
	ExecuteInteractive(ctx context.Context, name string, args ...string) error

	// ReplaceProcess replaces the current process with the command.
	// On success it does not return.
	ReplaceProcess(name string, args ...string) error
}

var defaultExecutor CommandExecutor = &osExecutor{}

// DefaultExecutor returns the process-wide executor.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor swaps the process-wide executor. Tests install a
// MockExecutor and restore with ResetDefault.
func SetDefaultExecutor(e CommandExecutor) {
	defaultExecutor = e
}

// ResetDefault restores the real executor.
func ResetDefault() {
	defaultExecutor = &osExecutor{}
}

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

func (e *osExecutor) ExecuteInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (e *osExecutor) ReplaceProcess(name string, args ...string) error {
	binary, err := exec.LookPath(name)
	if err != nil {
		return err
	}

	// Build argv with program name as first element
	argv := append([]string{name}, args...)

	return syscall.Exec(binary, argv, os.Environ())
}
