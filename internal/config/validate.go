package config

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Target name: must start with a lowercase letter, may contain lowercase,
// digits, underscores, and hyphens (e.g., "custom_values").
var targetNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Project.Name == "" {
		return &ValidationError{Field: "project.name", Message: "is required"}
	}

	if len(cfg.Targets) == 0 {
		return &ValidationError{Field: "targets", Message: "at least one target is required"}
	}

	seen := make(map[string]bool, len(cfg.Targets))
	for i, target := range cfg.Targets {
		field := fmt.Sprintf("targets[%d]", i)

		if target.Name == "" {
			return &ValidationError{Field: field + ".name", Message: "is required"}
		}
		if !targetNamePattern.MatchString(target.Name) {
			return &ValidationError{
				Field:   field + ".name",
				Message: "must match pattern ^[a-z][a-z0-9_-]*$ (lowercase letters, digits, underscores, hyphens)",
			}
		}
		if seen[target.Name] {
			return &ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate target name %q", target.Name),
			}
		}
		seen[target.Name] = true

		if filepath.IsAbs(target.Directory) {
			return &ValidationError{
				Field:   field + ".directory",
				Message: "must be relative to the workspace root",
			}
		}

		for _, f := range target.Features {
			if f == "" {
				return &ValidationError{
					Field:   field + ".features",
					Message: "feature flags must be non-empty strings",
				}
			}
		}
	}

	return nil
}
