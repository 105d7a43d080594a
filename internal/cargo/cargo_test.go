package cargo

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/magefile/mage/sh"
)

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
		bin  string
		want string
	}{
		{"default bin", Invocation{Subcommand: "build"}, "", "cargo build"},
		{"custom bin", Invocation{Subcommand: "test"}, "/opt/cargo", "/opt/cargo test"},
		{
			"with args",
			Invocation{Subcommand: "build", Args: []string{"--workspace", "--features", "a,b"}},
			"",
			"cargo build --workspace --features a,b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.CommandLine(tt.bin); got != tt.want {
				t.Errorf("CommandLine(%q) = %q, want %q", tt.bin, got, tt.want)
			}
		})
	}
}

func TestShellRun(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not found in PATH")
	}

	var out, errOut bytes.Buffer
	s := &Shell{Bin: "true", Stdout: &out, Stderr: &errOut}
	if err := s.Run(context.Background(), Invocation{Subcommand: "build"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
}

func TestShellRunExitStatus(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not found in PATH")
	}

	s := &Shell{Bin: "false", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := s.Run(context.Background(), Invocation{Subcommand: "build"})
	if err == nil {
		t.Fatal("Run() returned nil error for failing command")
	}
	if code := sh.ExitStatus(err); code != 1 {
		t.Errorf("sh.ExitStatus(err) = %d, want 1", code)
	}
}

func TestShellVerboseEchoesCommand(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not found in PATH")
	}

	var errOut bytes.Buffer
	s := &Shell{Bin: "true", Verbose: true, Stdout: &bytes.Buffer{}, Stderr: &errOut}
	if err := s.Run(context.Background(), Invocation{Subcommand: "fmt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !strings.Contains(errOut.String(), "+ true fmt") {
		t.Errorf("stderr = %q, want echoed command line", errOut.String())
	}
}
