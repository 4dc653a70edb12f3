package cli

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"crateup/internal/errors"
	"crateup/internal/installer"
	"crateup/internal/output"
	"crateup/internal/project"
	"crateup/internal/runner"
	"crateup/internal/target"
)

// out is the shared output writer for CLI commands.
var out = output.New()

// applyVerbosityToOutput configures the output writer based on verbosity settings.
func applyVerbosityToOutput(opts *GlobalOptions) {
	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)
}

// loadProject loads the workspace configuration and handles errors uniformly.
// Returns the project and exit code 0 on success, or nil and the appropriate
// exit code on failure.
func loadProject() (*project.Project, int) {
	proj, err := project.LoadProject()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}
	return proj, 0
}

// cmdInstall installs all targets, or the named subset, in declaration order.
func cmdInstall(names []string, opts *GlobalOptions) int {
	proj, code := loadProject()
	if proj == nil {
		return code
	}

	registry, err := target.NewRegistry(proj.Config)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	tool := installer.NewCargoTool(proj.Config.Tool)
	if !opts.DryRun && !tool.Available() {
		out.ErrorPrefix("install tool %q not found in PATH", tool.Bin())
		return errors.ExitRuntimeError
	}

	r := runner.New(registry, tool, proj.Root)
	r.SetOutput(out)

	// An interrupt aborts the current tool invocation and the run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOpts := runner.Options{
		DryRun:    opts.DryRun,
		ExtraArgs: opts.PassArgs,
	}

	var results []runner.Result
	var runErr error
	if len(names) == 0 {
		results, runErr = r.RunAll(ctx, runOpts)
	} else {
		results, runErr = r.RunTargets(ctx, names, runOpts)
	}

	if opts.DryRun && runErr == nil {
		return errors.ExitSuccess
	}

	if runErr != nil {
		if ctx.Err() != nil {
			out.ErrorPrefix("interrupted")
			return errors.ExitRuntimeError
		}
		printInstallSummary(results)
		out.FinalFailure("install failed: %v", runErr)
		return errors.GetExitCode(runErr)
	}

	printInstallSummary(results)
	out.FinalSuccess("installed %d target(s)", len(results))
	return errors.ExitSuccess
}

// printInstallSummary prints the per-run outcome counts.
func printInstallSummary(results []runner.Result) {
	if out.Verbose() {
		out.SummaryHeader("Install Summary")
		var passed, failed int
		for _, res := range results {
			if res.Succeeded {
				passed++
			} else {
				failed++
			}
		}
		out.SummaryPassed("Installed", strconv.Itoa(passed))
		if failed > 0 {
			out.SummaryFailed("Failed", strconv.Itoa(failed))
		}
	}
}

// cmdTargets lists configured install targets in install order.
func cmdTargets() int {
	proj, code := loadProject()
	if proj == nil {
		return code
	}

	registry, err := target.NewRegistry(proj.Config)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	for _, t := range registry.All() {
		out.TargetInfo(t.Name(), displayTitle(t), t.Directory())
	}
	return errors.ExitSuccess
}

// displayTitle returns the configured title, or a title-cased fallback
// derived from the target name.
func displayTitle(t *target.Target) string {
	if t.Title() != "" {
		return t.Title()
	}
	return cases.Title(language.English).String(strings.ReplaceAll(t.Name(), "_", " "))
}

// cmdConfig handles config subcommands.
func cmdConfig(args []string) int {
	if len(args) == 0 || args[0] != "validate" {
		out.ErrorPrefix("usage: crateup config validate")
		return errors.ExitConfigError
	}

	proj, code := loadProject()
	if proj == nil {
		return code
	}

	if proj.ConfigPath == "" {
		out.Info("no config file found; built-in target list in use")
		out.ValidationSuccess("default configuration is valid (%d targets)", len(proj.Config.Targets))
		return errors.ExitSuccess
	}

	out.ValidationSuccess("%s is valid (%d targets)", proj.ConfigPath, len(proj.Config.Targets))
	return errors.ExitSuccess
}
