// Package toolchain probes the installed cargo toolchain.
package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"
)

// Info describes the cargo binary found on PATH.
type Info struct {
	Path    string // absolute path of the binary
	Version string // reported version, e.g. "1.75.0"
}

// Probe locates bin on PATH and parses its reported version.
func Probe(ctx context.Context, bin string) (Info, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Info{}, fmt.Errorf("%s not found in PATH: %w", bin, err)
	}
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return Info{}, fmt.Errorf("%s --version: %w", bin, err)
	}
	ver, err := ParseVersion(string(out))
	if err != nil {
		return Info{}, err
	}
	return Info{Path: path, Version: ver}, nil
}

// ParseVersion extracts the version number from `cargo --version` output,
// e.g. "cargo 1.75.0 (1d8b05cdd 2023-11-20)" yields "1.75.0".
func ParseVersion(s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || fields[0] != "cargo" {
		return "", fmt.Errorf("unrecognized cargo version output %q", strings.TrimSpace(s))
	}
	return fields[1], nil
}

// Meets reports whether installed version v satisfies the minimum min.
// Both are bare versions without a "v" prefix; pre-release suffixes such
// as "-nightly" compare as semver pre-releases.
func Meets(v, min string) bool {
	return semver.Compare("v"+v, "v"+min) >= 0
}

// HasExtension reports whether the cargo subcommand extension name is
// installed, i.e. a cargo-<name> binary is on PATH.
func HasExtension(name string) bool {
	_, err := exec.LookPath("cargo-" + name)
	return err == nil
}
