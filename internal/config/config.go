package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	crateuperrors "crateup/internal/errors"
	"crateup/internal/schema"
)

// Load reads and parses a crateup configuration file.
// The format is chosen by extension: .yaml/.yml files are parsed as YAML,
// everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return &cfg, nil
}

// LoadWithDefaults reads a config file and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// LoadAndValidate reads a config file, checks it against the embedded schema,
// applies defaults, and validates the result.
func LoadAndValidate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if isYAMLPath(path) {
		if err := schema.ValidateYAML(data); err != nil {
			return nil, configError(err)
		}
	} else {
		if err := schema.ValidateJSON(data); err != nil {
			return nil, configError(err)
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, configError(err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, configError(err)
	}

	return cfg, nil
}

// configError wraps a load or validation failure so it maps to the
// configuration exit code.
func configError(err error) error {
	return &crateuperrors.CrateupError{
		Kind:    crateuperrors.KindConfig,
		Message: err.Error(),
		Cause:   err,
	}
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
