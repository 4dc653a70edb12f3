// Package crateup provides public constants for external tools integrating
// with the crateup CLI.
package crateup

// Exit codes returned by the crateup CLI.
// These constants allow external tools and scripts to check exit codes
// symbolically rather than using magic numbers.
//
// When the external install tool itself fails, crateup exits with the
// tool's own exit code instead of one of these constants.
const (
	// ExitSuccess indicates every requested target installed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (install tool missing,
	// interrupted run, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config,
	// unknown command, validation failure, etc.).
	ExitConfigError = 2

	// ExitPathError indicates a target directory could not be resolved
	// against the workspace root.
	ExitPathError = 3
)
