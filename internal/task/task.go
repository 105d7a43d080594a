// Package task maps uniform task names onto cargo invocations and runs
// them, sequencing composite tasks with fail-fast semantics.
package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/magefile/mage/sh"

	"github.com/crateops/cargomk/internal/cargo"
	"github.com/crateops/cargomk/internal/compose"
	"github.com/crateops/cargomk/internal/config"
)

// Name identifies one task.
type Name string

const (
	Debug       Name = "debug"
	Release     Name = "release"
	Test        Name = "test"
	Fmt         Name = "fmt"
	Lint        Name = "lint"
	Check       Name = "check"
	Doc         Name = "doc"
	Clean       Name = "clean"
	UpdateDeps  Name = "update-deps"
	UpgradeDeps Name = "upgrade-deps"
)

// CI is the continuous-integration sequence.
var CI = []Name{Fmt, Lint, Test}

// All is the full pipeline and the default when no task is named.
var All = []Name{Fmt, Lint, Test, Release}

// Invocation returns the single cargo invocation a task forwards to.
// Every task appends the composed flags except fmt and clean, which are
// flag-independent, and the dependency tasks, which delegate version
// handling to cargo entirely.
func Invocation(name Name, cfg config.Build) cargo.Invocation {
	flags := compose.Flags(cfg)
	switch name {
	case Debug:
		return cargo.Invocation{Subcommand: "build", Args: flags}
	case Release:
		return cargo.Invocation{Subcommand: "build", Args: append(flags, "--release")}
	case Test:
		return cargo.Invocation{Subcommand: "test", Args: append(flags, strings.Fields(cfg.TestFlags)...)}
	case Fmt:
		return cargo.Invocation{Subcommand: "fmt"}
	case Lint:
		return cargo.Invocation{Subcommand: "clippy", Args: append(flags, "--all-targets", "--", "-D", "warnings")}
	case Check:
		return cargo.Invocation{Subcommand: "check", Args: flags}
	case Doc:
		return cargo.Invocation{Subcommand: "doc", Args: append(flags, "--no-deps")}
	case Clean:
		return cargo.Invocation{Subcommand: "clean"}
	case UpdateDeps:
		return cargo.Invocation{Subcommand: "update", Args: []string{"--verbose"}}
	case UpgradeDeps:
		// Requires the cargo-edit extension; when it is missing cargo's
		// own "no such command" diagnostic is surfaced unchanged.
		return cargo.Invocation{Subcommand: "upgrade", Args: []string{"--verbose"}}
	}
	panic(fmt.Sprintf("task: unknown task %q", name))
}

// ExitError reports a failed cargo invocation together with the exit
// status it should propagate to the process.
type ExitError struct {
	Task Name
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("task %s: %v", e.Task, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit status of the failed cargo process.
func (e *ExitError) ExitCode() int { return e.Code }

// Run executes one task through r. A failure comes back as an
// *ExitError carrying the cargo process's exit status; there is no
// retry and no recovery.
func Run(ctx context.Context, r cargo.Runner, cfg config.Build, name Name) error {
	if err := r.Run(ctx, Invocation(name, cfg)); err != nil {
		return &ExitError{Task: name, Code: sh.ExitStatus(err), Err: err}
	}
	return nil
}

// Sequence executes tasks in order, stopping at the first failure and
// returning its error untouched. A step banner is written to out for
// each task when out is non-nil.
func Sequence(ctx context.Context, r cargo.Runner, cfg config.Build, names []Name, out io.Writer) error {
	for _, name := range names {
		if out != nil {
			fmt.Fprintf(out, "==> %s\n", name)
		}
		if err := Run(ctx, r, cfg, name); err != nil {
			return err
		}
	}
	return nil
}
