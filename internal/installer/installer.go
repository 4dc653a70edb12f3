// Package installer invokes the external "install from local path" tool.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Tool abstracts the external install command so test doubles can be
// substituted for the real tool.
type Tool interface {
	// Install runs the install command in dir with the given extra
	// arguments. It blocks until the command exits. A non-zero exit
	// code is reported as *ExitError; stdout and stderr pass through
	// to the user.
	Install(ctx context.Context, dir string, args []string) error

	// CommandLine returns the argument vector Install would run, for
	// dry runs and verbose output.
	CommandLine(args []string) []string
}

// ExitError reports a non-zero exit code from the external tool.
type ExitError struct {
	Code  int
	Cause error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("install tool exited with code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// CargoTool installs a crate from a local path via `cargo install --path .`.
type CargoTool struct {
	bin    string
	stdout io.Writer
	stderr io.Writer
}

// NewCargoTool creates a tool wrapper around the given binary.
// An empty bin falls back to "cargo".
func NewCargoTool(bin string) *CargoTool {
	if bin == "" {
		bin = "cargo"
	}
	return &CargoTool{
		bin:    bin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewCargoToolWithWriters creates a tool with custom output writers (for testing).
func NewCargoToolWithWriters(bin string, stdout, stderr io.Writer) *CargoTool {
	t := NewCargoTool(bin)
	t.stdout = stdout
	t.stderr = stderr
	return t
}

// Bin returns the configured tool binary.
func (t *CargoTool) Bin() string {
	return t.bin
}

// Available reports whether the tool binary can be found in PATH.
func (t *CargoTool) Available() bool {
	_, err := exec.LookPath(t.bin)
	return err == nil
}

// CommandLine returns the argument vector Install would run, for dry runs
// and verbose output.
func (t *CargoTool) CommandLine(args []string) []string {
	line := []string{t.bin, "install", "--path", "."}
	return append(line, args...)
}

// Install runs `<bin> install --path . <args...>` with the command's working
// directory set to dir. The directory comes from the caller's explicit root
// resolution; the process working directory is never changed.
func (t *CargoTool) Install(ctx context.Context, dir string, args []string) error {
	cmdArgs := append([]string{"install", "--path", "."}, args...)
	cmd := exec.CommandContext(ctx, t.bin, cmdArgs...)
	cmd.Dir = dir
	cmd.Stdout = t.stdout
	cmd.Stderr = t.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode(), Cause: err}
	}
	return err
}
