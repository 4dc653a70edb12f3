// Package runner executes install targets sequentially with fail-fast semantics.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	crateuperrors "crateup/internal/errors"
	"crateup/internal/installer"
	"crateup/internal/output"
	"crateup/internal/target"
)

// Runner orchestrates install execution across the target list.
// Targets run strictly one at a time, in declaration order; the first
// failure terminates the run and remaining targets are never invoked.
type Runner struct {
	registry *target.Registry
	tool     installer.Tool
	root     string
	out      *output.Writer
}

// Options configures execution behavior.
type Options struct {
	// DryRun prints the commands that would run without invoking the tool.
	DryRun bool

	// ExtraArgs are appended to every tool invocation (CLI pass-through
	// arguments after --).
	ExtraArgs []string
}

// Result records the outcome of one target.
// ExitCode is the external tool's exit code; -1 means the tool was never
// invoked for this target (path error or tool startup failure).
type Result struct {
	Target    *target.Target
	ExitCode  int
	Succeeded bool
}

// New creates a new Runner. The root is the directory every target path is
// resolved against; the process working directory is never consulted.
func New(registry *target.Registry, tool installer.Tool, root string) *Runner {
	return &Runner{
		registry: registry,
		tool:     tool,
		root:     root,
		out:      output.New(),
	}
}

// SetOutput replaces the output writer (shared with the CLI, or a buffer in tests).
func (r *Runner) SetOutput(w *output.Writer) {
	r.out = w
}

// RunAll installs every target in declaration order.
func (r *Runner) RunAll(ctx context.Context, opts Options) ([]Result, error) {
	return r.runSequential(ctx, r.registry.All(), opts)
}

// RunTargets installs the named targets, still in declaration order.
func (r *Runner) RunTargets(ctx context.Context, names []string, opts Options) ([]Result, error) {
	selected, err := r.registry.Select(names)
	if err != nil {
		return nil, &crateuperrors.CrateupError{
			Kind:    crateuperrors.KindNotFound,
			Message: err.Error(),
			Cause:   err,
		}
	}
	return r.runSequential(ctx, selected, opts)
}

// runSequential is a short-circuiting fold over the target list: the first
// failing target's result is returned and nothing after it runs.
func (r *Runner) runSequential(ctx context.Context, targets []*target.Target, opts Options) ([]Result, error) {
	if opts.DryRun {
		r.out.DryRunStart()
	}

	results := make([]Result, 0, len(targets))
	total := len(targets)

	for i, t := range targets {
		// Early exit if the context was canceled before the next target
		if err := ctx.Err(); err != nil {
			return results, err
		}

		r.out.TargetStart(t.Name(), i+1, total)

		dir := t.AbsDir(r.root)
		args := append(t.InstallArgs(), opts.ExtraArgs...)

		fi, statErr := os.Stat(dir)
		if statErr != nil || !fi.IsDir() {
			pathErr := crateuperrors.Path(t.Name(),
				fmt.Sprintf("target directory %q does not exist", t.Directory()), statErr)
			r.out.TargetFailed(t.Name(), pathErr)
			results = append(results, Result{Target: t, ExitCode: -1})
			return results, pathErr
		}

		if opts.DryRun {
			r.out.Println("would run: %s (in %s)", strings.Join(r.tool.CommandLine(args), " "), dir)
			results = append(results, Result{Target: t, ExitCode: 0, Succeeded: true})
			continue
		}

		r.out.Detail("%s (in %s)", strings.Join(r.tool.CommandLine(args), " "), dir)

		if err := r.tool.Install(ctx, dir, args); err != nil {
			// An interrupt kills the child process; report the
			// cancellation, not the resulting exit code.
			if ctx.Err() != nil {
				return results, ctx.Err()
			}

			var exitErr *installer.ExitError
			if errors.As(err, &exitErr) {
				installErr := &crateuperrors.InstallError{
					Target: t.Name(),
					Code:   exitErr.Code,
					Cause:  err,
				}
				r.out.TargetFailed(t.Name(), err)
				results = append(results, Result{Target: t, ExitCode: exitErr.Code})
				return results, installErr
			}

			runErr := &crateuperrors.CrateupError{
				Kind:    crateuperrors.KindRuntime,
				Target:  t.Name(),
				Message: fmt.Sprintf("failed to run install tool: %v", err),
				Cause:   err,
			}
			r.out.TargetFailed(t.Name(), err)
			results = append(results, Result{Target: t, ExitCode: -1})
			return results, runErr
		}

		r.out.TargetSuccess(t.Name())
		results = append(results, Result{Target: t, ExitCode: 0, Succeeded: true})
	}

	if opts.DryRun {
		r.out.DryRunEnd()
	}

	return results, nil
}
