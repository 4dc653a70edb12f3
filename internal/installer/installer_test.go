package installer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// writeFakeTool creates an executable script that logs its working directory
// and arguments, then exits with the given code.
func writeFakeTool(t *testing.T, exitCode int) (bin, logPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool script requires a POSIX shell")
	}

	dir := t.TempDir()
	bin = filepath.Join(dir, "fakecargo")
	logPath = filepath.Join(dir, "invocations.log")

	script := "#!/bin/sh\n" +
		"echo \"$PWD $@\" >> " + logPath + "\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return bin, logPath
}

func TestCargoTool_Install_Success(t *testing.T) {
	bin, logPath := writeFakeTool(t, 0)
	workDir := t.TempDir()

	var out, errBuf bytes.Buffer
	tool := NewCargoToolWithWriters(bin, &out, &errBuf)

	if err := tool.Install(context.Background(), workDir, []string{"--features=dataframe"}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read invocation log: %v", err)
	}
	logged := strings.TrimSpace(string(data))

	if !strings.Contains(logged, "install --path . --features=dataframe") {
		t.Errorf("tool invoked with wrong arguments: %q", logged)
	}
	// macOS resolves TempDir through /private symlinks, so compare the suffix.
	loggedDir := strings.Fields(logged)[0]
	if !strings.HasSuffix(loggedDir, filepath.Base(workDir)) {
		t.Errorf("tool ran in %q, want directory %q", loggedDir, workDir)
	}
}

func TestCargoTool_Install_NonZeroExit(t *testing.T) {
	bin, _ := writeFakeTool(t, 101)
	workDir := t.TempDir()

	tool := NewCargoToolWithWriters(bin, &bytes.Buffer{}, &bytes.Buffer{})

	err := tool.Install(context.Background(), workDir, nil)
	if err == nil {
		t.Fatal("Install() = nil, want error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Install() error type = %T, want *ExitError", err)
	}
	if exitErr.Code != 101 {
		t.Errorf("ExitError.Code = %d, want 101", exitErr.Code)
	}
}

func TestCargoTool_Install_MissingBinary(t *testing.T) {
	tool := NewCargoToolWithWriters(filepath.Join(t.TempDir(), "nonexistent"), &bytes.Buffer{}, &bytes.Buffer{})

	err := tool.Install(context.Background(), t.TempDir(), nil)
	if err == nil {
		t.Fatal("Install() = nil, want error for missing binary")
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("missing binary should not produce *ExitError, got code %d", exitErr.Code)
	}
}

func TestCargoTool_Defaults(t *testing.T) {
	tool := NewCargoTool("")
	if tool.Bin() != "cargo" {
		t.Errorf("Bin() = %q, want %q", tool.Bin(), "cargo")
	}
}

func TestCargoTool_CommandLine(t *testing.T) {
	tool := NewCargoTool("cargo")

	got := tool.CommandLine([]string{"--features=dataframe"})
	want := "cargo install --path . --features=dataframe"
	if strings.Join(got, " ") != want {
		t.Errorf("CommandLine() = %q, want %q", strings.Join(got, " "), want)
	}
}

func TestExitError_Error(t *testing.T) {
	err := &ExitError{Code: 7}
	if got := err.Error(); got != "install tool exited with code 7" {
		t.Errorf("Error() = %q", got)
	}
}
