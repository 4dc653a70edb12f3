// Package project provides workspace discovery and loading functionality.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileNames lists recognized configuration file names, in lookup order.
var ConfigFileNames = []string{"crateup.json", "crateup.yaml", "crateup.yml"}

// ErrNoProjectRoot is returned when no crateup config file is found.
var ErrNoProjectRoot = errors.New("crateup.json not found (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds a
// crateup config file. Returns the directory and the config file path.
func FindRoot() (string, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds a crateup
// config file.
func FindRootFrom(startDir string) (string, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", err
	}

	for {
		for _, name := range ConfigFileNames {
			configPath := filepath.Join(dir, name)
			if fi, err := os.Stat(configPath); err == nil && !fi.IsDir() {
				return dir, configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", "", ErrNoProjectRoot
		}
		dir = parent
	}
}
