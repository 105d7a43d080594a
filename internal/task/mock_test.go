package task

import (
	"context"
	"fmt"

	"github.com/crateops/cargomk/internal/cargo"
)

// fakeRunner implements cargo.Runner for testing. It records every
// invocation and fails scripted subcommands with a given exit code.
type fakeRunner struct {
	calls []cargo.Invocation
	fail  map[string]int // subcommand -> exit code
}

func (f *fakeRunner) Run(ctx context.Context, inv cargo.Invocation) error {
	f.calls = append(f.calls, inv)
	if code, ok := f.fail[inv.Subcommand]; ok {
		return exitErr(code)
	}
	return nil
}

func (f *fakeRunner) subcommands() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Subcommand
	}
	return out
}

// exitErr carries a process exit status the way mage's sh package reads
// one back out.
type exitErr int

func (e exitErr) Error() string   { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitErr) ExitStatus() int { return int(e) }
