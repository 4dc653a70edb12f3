package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Project: ProjectConfig{Name: "nu-workspace"},
		Tool:    "cargo",
		Targets: []TargetConfig{
			{Name: "primary", Directory: "."},
			{Name: "custom_values", Directory: "crates/nu_plugin_custom_values"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "missing project name",
			mutate:  func(c *Config) { c.Project.Name = "" },
			wantSub: "project.name",
		},
		{
			name:    "no targets",
			mutate:  func(c *Config) { c.Targets = nil },
			wantSub: "at least one target",
		},
		{
			name:    "missing target name",
			mutate:  func(c *Config) { c.Targets[0].Name = "" },
			wantSub: "targets[0].name",
		},
		{
			name:    "invalid target name",
			mutate:  func(c *Config) { c.Targets[0].Name = "Primary" },
			wantSub: "pattern",
		},
		{
			name:    "duplicate target name",
			mutate:  func(c *Config) { c.Targets[1].Name = "primary" },
			wantSub: "duplicate",
		},
		{
			name:    "absolute directory",
			mutate:  func(c *Config) { c.Targets[1].Directory = "/abs" },
			wantSub: "relative",
		},
		{
			name:    "empty feature flag",
			mutate:  func(c *Config) { c.Targets[0].Features = []string{""} },
			wantSub: "non-empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestValidate_UnderscoreNamesAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Targets[1].Name = "custom_values"

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v, underscores must be allowed", err)
	}
}
