package integration

import (
	"path/filepath"
	"strings"
	"testing"

	"crateup/internal/config"
	"crateup/internal/errors"
	"crateup/internal/project"
)

func TestConfigValidateMissingName(t *testing.T) {
	configPath := filepath.Join(fixturesDir(), "invalid", "missing-name", "crateup.json")

	_, err := config.LoadAndValidate(configPath)
	if err == nil {
		t.Fatal("expected error for config with missing project name")
	}
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfigError)
	}
}

func TestConfigValidateDuplicateTarget(t *testing.T) {
	configPath := filepath.Join(fixturesDir(), "invalid", "duplicate-target", "crateup.json")

	_, err := config.LoadAndValidate(configPath)
	if err == nil {
		t.Fatal("expected error for duplicate target names")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "duplicate") {
		t.Errorf("error = %q, want to mention 'duplicate'", err.Error())
	}
}

func TestConfigValidateAbsoluteDirectory(t *testing.T) {
	configPath := filepath.Join(fixturesDir(), "invalid", "absolute-dir", "crateup.json")

	_, err := config.LoadAndValidate(configPath)
	if err == nil {
		t.Fatal("expected error for absolute target directory")
	}
	if !strings.Contains(err.Error(), "relative") {
		t.Errorf("error = %q, want to mention 'relative'", err.Error())
	}
}

func TestInvalidConfigMapsToConfigExitCode(t *testing.T) {
	fixtureDir := filepath.Join(fixturesDir(), "invalid", "missing-name")

	_, err := project.LoadProjectFrom(fixtureDir)
	if err == nil {
		t.Fatal("expected error loading invalid workspace")
	}
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfigError)
	}
}

func TestYAMLAndJSONConfigsAgree(t *testing.T) {
	yamlProj, err := project.LoadProjectFrom(filepath.Join(fixturesDir(), "workspace"))
	if err != nil {
		t.Fatalf("failed to load YAML workspace: %v", err)
	}
	jsonProj, err := project.LoadProjectFrom(filepath.Join(fixturesDir(), "minimal"))
	if err != nil {
		t.Fatalf("failed to load JSON workspace: %v", err)
	}

	// Both formats get the same defaults applied.
	if yamlProj.Config.Tool != jsonProj.Config.Tool {
		t.Errorf("tool mismatch between formats: %q vs %q", yamlProj.Config.Tool, jsonProj.Config.Tool)
	}
}
