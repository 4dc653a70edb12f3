// Package cli provides command-line interface functionality for crateup.
package cli

import (
	"fmt"

	"crateup/internal/errors"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help before any -- separator.
// Arguments after -- are passed through to the install tool, so help flags
// there are ignored.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if wantsHelp(args) {
		printUsage()
		return 0
	}

	if len(args) > 0 {
		switch args[0] {
		case "help":
			printUsage()
			return 0
		case "--version", "version":
			fmt.Printf("crateup %s\n", Version)
			return 0
		}
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	applyVerbosityToOutput(opts)

	// No command runs the full target list.
	if len(remaining) == 0 {
		return cmdInstall(nil, opts)
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "install":
		return cmdInstall(cmdArgs, opts)
	case "targets":
		return cmdTargets()
	case "config":
		return cmdConfig(cmdArgs)
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Errorln("run 'crateup help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet    bool
	Verbose  bool
	DryRun   bool
	PassArgs []string // Arguments after --, forwarded to every tool invocation
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Pass-through arguments after -- must be preserved verbatim
// - Custom error messages with usage hints are needed
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--dry-run":
			opts.DryRun = true
			i++
		case arg == "--":
			// Everything after -- is forwarded to the install tool
			opts.PassArgs = append(opts.PassArgs, args[i+1:]...)
			i = len(args)
		case len(arg) > 1 && arg[0] == '-':
			return nil, nil, fmt.Errorf("unknown flag %q", arg)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	return opts, remaining, nil
}

func printUsage() {
	w := out

	w.HelpTitle("crateup - batch installer for local crates")

	w.HelpSection("Usage:")
	w.HelpUsage("crateup                     Install every configured target, in order")
	w.HelpUsage("crateup install [target...] Install all or selected targets")
	w.HelpUsage("crateup <command> [flags] [-- <tool args>]")

	w.HelpSection("Commands:")
	w.HelpCommand("install [target...]", "Install targets from their local paths", 19)
	w.HelpCommand("targets", "List configured install targets", 19)
	w.HelpCommand("config validate", "Validate the workspace configuration", 19)
	w.HelpCommand("version", "Show version information", 19)

	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", 13)
	w.HelpFlag("-v, --verbose", "Print each tool command line", 13)
	w.HelpFlag("--dry-run", "Print what would run without installing", 13)
	w.HelpFlag("-h, --help", "Show this help", 13)
	w.HelpFlag("--version", "Show version", 13)

	w.HelpSection("Examples:")
	w.HelpExample("crateup", "Install the primary crate and every plugin")
	w.HelpExample("crateup install inc query", "Install only the inc and query plugins")
	w.HelpExample("crateup -- --locked", "Forward --locked to every cargo invocation")
	w.Println("")
}
