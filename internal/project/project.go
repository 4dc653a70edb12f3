package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"crateup/internal/config"
)

// Project represents a loaded crateup workspace.
type Project struct {
	Root       string
	Config     *config.Config
	ConfigPath string // Empty when the built-in default config is in use
}

// LoadProject finds and loads a workspace from the current directory.
// When no config file exists anywhere up the tree, the current directory
// becomes the root and the built-in default target list is used, so the
// tool works out of the box in a standard workspace layout.
func LoadProject() (*Project, error) {
	root, configPath, err := FindRoot()
	if err != nil {
		if errors.Is(err, ErrNoProjectRoot) {
			cwd, cwdErr := os.Getwd()
			if cwdErr != nil {
				return nil, cwdErr
			}
			return &Project{
				Root:   cwd,
				Config: config.DefaultConfig(),
			}, nil
		}
		return nil, err
	}
	return loadFrom(root, configPath)
}

// LoadProjectFrom loads a workspace from a specified root directory.
// Returns an error if the root has no config file; callers wanting the
// default config should use LoadProject.
func LoadProjectFrom(root string) (*Project, error) {
	for _, name := range ConfigFileNames {
		configPath := filepath.Join(root, name)
		if fi, err := os.Stat(configPath); err == nil && !fi.IsDir() {
			return loadFrom(root, configPath)
		}
	}
	return nil, ErrNoProjectRoot
}

func loadFrom(root, configPath string) (*Project, error) {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Target directories are deliberately NOT checked here: a missing
	// directory is a per-target path failure reported during the run,
	// after the targets before it have installed.
	return &Project{
		Root:       root,
		Config:     cfg,
		ConfigPath: configPath,
	}, nil
}
