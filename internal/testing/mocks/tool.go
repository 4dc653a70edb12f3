// Package mocks provides shared test doubles for crateup packages.
package mocks

import (
	"context"
	"strings"
	"sync"

	"crateup/internal/installer"
)

// Tool implements installer.Tool for testing.
// It records every invocation (directory and arguments, in call order) and
// can be configured to fail on specific directories.
type Tool struct {
	// InstallFunc is called by Install after recording. If nil, Install
	// consults failures and returns nil on no match.
	InstallFunc func(ctx context.Context, dir string, args []string) error

	mu       sync.Mutex
	dirs     []string
	argLists [][]string
	failures map[string]int // directory suffix -> exit code
}

// NewTool creates a new mock tool that succeeds for every invocation.
func NewTool() *Tool {
	return &Tool{failures: make(map[string]int)}
}

// FailOn configures the tool to return the given exit code for any
// directory ending in dirSuffix.
func (m *Tool) FailOn(dirSuffix string, exitCode int) *Tool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[dirSuffix] = exitCode
	return m
}

// Install records the invocation and returns the configured result.
func (m *Tool) Install(ctx context.Context, dir string, args []string) error {
	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	argsCopy := make([]string, len(args))
	copy(argsCopy, args)
	m.argLists = append(m.argLists, argsCopy)

	var exitCode int
	var failed bool
	for suffix, code := range m.failures {
		if strings.HasSuffix(dir, suffix) {
			exitCode = code
			failed = true
			break
		}
	}
	m.mu.Unlock()

	if m.InstallFunc != nil {
		return m.InstallFunc(ctx, dir, args)
	}
	if failed {
		return &installer.ExitError{Code: exitCode}
	}
	return nil
}

// CommandLine mirrors the real tool's dry-run rendering.
func (m *Tool) CommandLine(args []string) []string {
	return append([]string{"cargo", "install", "--path", "."}, args...)
}

// Count returns the number of Install calls.
func (m *Tool) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.dirs)
}

// Dirs returns the directories Install was called with, in call order.
func (m *Tool) Dirs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.dirs))
	copy(result, m.dirs)
	return result
}

// Args returns the argument lists Install was called with, in call order.
func (m *Tool) Args() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([][]string, len(m.argLists))
	for i, a := range m.argLists {
		result[i] = append([]string(nil), a...)
	}
	return result
}

// Reset clears recorded invocations.
func (m *Tool) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs = nil
	m.argLists = nil
}
