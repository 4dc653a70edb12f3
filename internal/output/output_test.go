package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	return NewWithWriters(&out, &errBuf, false), &out, &errBuf
}

func TestTargetStart_Banner(t *testing.T) {
	w, out, _ := newTestWriter()

	w.TargetStart("primary", 1, 7)

	got := out.String()
	if !strings.Contains(got, "─── [primary] install (1/7) ───") {
		t.Errorf("banner missing, got %q", got)
	}
}

func TestTargetStart_Quiet(t *testing.T) {
	w, out, _ := newTestWriter()
	w.SetQuiet(true)

	w.TargetStart("primary", 1, 7)

	if out.Len() != 0 {
		t.Errorf("quiet mode should suppress banner, got %q", out.String())
	}
}

func TestTargetSuccess_NoColor(t *testing.T) {
	w, out, _ := newTestWriter()

	w.TargetSuccess("inc")

	if got := out.String(); got != "[inc] install done\n" {
		t.Errorf("TargetSuccess output = %q", got)
	}
}

func TestTargetFailed_GoesToStderr(t *testing.T) {
	w, out, errBuf := newTestWriter()

	w.TargetFailed("query", errors.New("exit code 101"))

	if out.Len() != 0 {
		t.Errorf("failure message should not go to stdout, got %q", out.String())
	}
	if got := errBuf.String(); got != "[query] install failed: exit code 101\n" {
		t.Errorf("TargetFailed output = %q", got)
	}
}

func TestTargetFailed_NotSuppressedByQuiet(t *testing.T) {
	w, _, errBuf := newTestWriter()
	w.SetQuiet(true)

	w.TargetFailed("query", errors.New("boom"))

	if errBuf.Len() == 0 {
		t.Error("quiet mode must not suppress failures")
	}
}

func TestWarning(t *testing.T) {
	w, _, errBuf := newTestWriter()

	w.Warning("tool %q not found", "cargo")

	if got := errBuf.String(); got != "warning: tool \"cargo\" not found\n" {
		t.Errorf("Warning output = %q", got)
	}
}

func TestErrorPrefix(t *testing.T) {
	w, _, errBuf := newTestWriter()

	w.ErrorPrefix("no targets configured")

	if got := errBuf.String(); got != "crateup: no targets configured\n" {
		t.Errorf("ErrorPrefix output = %q", got)
	}
}

func TestInfo_QuietSuppression(t *testing.T) {
	w, out, _ := newTestWriter()
	w.SetQuiet(true)

	w.Info("loading config")

	if out.Len() != 0 {
		t.Errorf("Info should be suppressed in quiet mode, got %q", out.String())
	}
}

func TestDetail_VerboseOnly(t *testing.T) {
	w, out, _ := newTestWriter()

	w.Detail("cargo install --path .")
	if out.Len() != 0 {
		t.Errorf("Detail without verbose should be silent, got %q", out.String())
	}

	w.SetVerbose(true)
	w.Detail("cargo install --path .")
	if got := out.String(); got != "cargo install --path .\n" {
		t.Errorf("Detail output = %q", got)
	}
}

func TestColorPlaceholders(t *testing.T) {
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, true)

	w.HelpUsage("crateup install <target>")

	got := out.String()
	if !strings.Contains(got, colorPlaceholder+"<target>"+reset) {
		t.Errorf("placeholder not colored, got %q", got)
	}
}

func TestDryRunMarkers(t *testing.T) {
	w, out, _ := newTestWriter()

	w.DryRunStart()
	w.DryRunEnd()

	got := out.String()
	if !strings.Contains(got, "=== DRY RUN ===") || !strings.Contains(got, "=== END DRY RUN ===") {
		t.Errorf("dry run markers missing, got %q", got)
	}
}
