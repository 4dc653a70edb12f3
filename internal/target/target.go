// Package target provides install targets and their ordered registry.
package target

import (
	"fmt"
	"path/filepath"
	"strings"

	"crateup/internal/config"
)

// Target is a single install target: a local source directory plus the
// arguments needed to install it via the external tool. Immutable once
// constructed.
type Target struct {
	name      string
	title     string
	directory string
	features  []string
	extraArgs []string
}

// NewTarget creates a target from configuration.
func NewTarget(cfg config.TargetConfig) (*Target, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("target name is required")
	}

	dir := cfg.Directory
	if dir == "" {
		dir = cfg.Name
	}
	if filepath.IsAbs(dir) {
		return nil, fmt.Errorf("target %q: directory must be relative", cfg.Name)
	}

	return &Target{
		name:      cfg.Name,
		title:     cfg.Title,
		directory: filepath.Clean(dir),
		features:  copySliceNilIfEmpty(cfg.Features),
		extraArgs: copySliceNilIfEmpty(cfg.ExtraArgs),
	}, nil
}

// Name returns the target's short name (e.g., "inc").
func (t *Target) Name() string { return t.name }

// Title returns the display name, which may be empty.
func (t *Target) Title() string { return t.title }

// Directory returns the target directory path relative to the root.
func (t *Target) Directory() string { return t.directory }

// Features returns a copy of the feature flag list.
func (t *Target) Features() []string {
	return copySliceNilIfEmpty(t.features)
}

// ExtraArgs returns a copy of the additional tool arguments.
func (t *Target) ExtraArgs() []string {
	return copySliceNilIfEmpty(t.extraArgs)
}

// AbsDir resolves the target's directory against the given root.
// Resolution always starts from the root, never from the process working
// directory, so directory changes made while processing one target cannot
// leak into the next.
func (t *Target) AbsDir(root string) string {
	return filepath.Join(root, t.directory)
}

// InstallArgs returns the argument list appended to the tool's install
// command: the feature flags (if any) followed by extra args.
func (t *Target) InstallArgs() []string {
	var args []string
	if len(t.features) > 0 {
		args = append(args, "--features="+strings.Join(t.features, ","))
	}
	args = append(args, t.extraArgs...)
	return args
}

// copySliceNilIfEmpty copies the slice, returning nil if it is nil or empty.
// Nil and empty both mean "not configured" here, so they are normalized to
// nil to simplify downstream checks.
func copySliceNilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	result := make([]string, len(s))
	copy(result, s)
	return result
}
