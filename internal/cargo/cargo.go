// Package cargo runs cargo subcommands as subprocesses.
package cargo

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultBin is the cargo binary resolved from PATH.
const DefaultBin = "cargo"

// Invocation is a single cargo subcommand together with its argument list.
// Args are discrete tokens; no shell expansion happens anywhere.
type Invocation struct {
	Subcommand string
	Args       []string
}

// CommandLine renders the invocation the way it would be typed in a shell,
// for echo output only.
func (inv Invocation) CommandLine(bin string) string {
	if bin == "" {
		bin = DefaultBin
	}
	parts := append([]string{bin, inv.Subcommand}, inv.Args...)
	return strings.Join(parts, " ")
}

// Runner executes cargo invocations. The production implementation is
// Shell; tests substitute a recording fake.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// Shell runs cargo as a child process with stdout and stderr passed
// through, so cargo's own diagnostics are the user-visible explanation
// of any failure. A non-zero exit comes back as an *exec.ExitError.
type Shell struct {
	Bin     string // cargo binary, DefaultBin when empty
	Verbose bool   // echo each command line before running it
	Stdout  io.Writer
	Stderr  io.Writer
}

func (s *Shell) bin() string {
	if s.Bin != "" {
		return s.Bin
	}
	return DefaultBin
}

func (s *Shell) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s *Shell) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}

func (s *Shell) Run(ctx context.Context, inv Invocation) error {
	if s.Verbose {
		fmt.Fprintln(s.stderr(), "+", inv.CommandLine(s.bin()))
	}
	args := append([]string{inv.Subcommand}, inv.Args...)
	cmd := exec.CommandContext(ctx, s.bin(), args...)
	cmd.Stdout = s.stdout()
	cmd.Stderr = s.stderr()
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
