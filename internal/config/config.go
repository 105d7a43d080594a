package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file, read from the
// working directory when present.
const FileName = "cargomk.yaml"

// Build holds the overrides that shape every forwarded cargo invocation.
// Every field defaults to empty, which means "contributes nothing".
// A Build is constructed once per run and passed by value; it is never
// mutated afterwards.
type Build struct {
	// Features is a comma-separated cargo feature list. When non-empty it
	// yields a "--features <value>" pair on every forwarded command.
	Features string

	// Workspace is a literal flag token (commonly "--workspace") prepended
	// verbatim to the composed flag list when non-empty.
	Workspace string

	// ExtraFlags is a free-form, whitespace-separated set of flags appended
	// to every forwarded command.
	ExtraFlags string

	// TestFlags is a free-form flag set appended only to the test task.
	TestFlags string

	// MinCargoVersion is the minimum cargo version accepted by the doctor
	// task, e.g. "1.75.0". It never contributes to composed flags.
	MinCargoVersion string
}

type fileConfig struct {
	Features        string `yaml:"features"`
	Workspace       string `yaml:"workspace"`
	CargoFlags      string `yaml:"cargo-flags"`
	TestFlags       string `yaml:"test-flags"`
	MinCargoVersion string `yaml:"min-cargo-version"`
}

// Load reads the build configuration for the project rooted at dir.
// Values come from cargomk.yaml when the file exists, then non-empty
// environment variables override them. A missing file is not an error.
func Load(dir string) (Build, error) {
	var cfg Build

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no project file, environment only
	case err != nil:
		return Build{}, fmt.Errorf("read %s: %w", FileName, err)
	default:
		var f fileConfig
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Build{}, fmt.Errorf("parse %s: %w", FileName, err)
		}
		cfg = Build{
			Features:        f.Features,
			Workspace:       f.Workspace,
			ExtraFlags:      f.CargoFlags,
			TestFlags:       f.TestFlags,
			MinCargoVersion: f.MinCargoVersion,
		}
	}

	overrideEnv(&cfg.Features, "FEATURES")
	overrideEnv(&cfg.Workspace, "WORKSPACE")
	overrideEnv(&cfg.ExtraFlags, "CARGO_FLAGS")
	overrideEnv(&cfg.TestFlags, "TEST_FLAGS")
	overrideEnv(&cfg.MinCargoVersion, "CARGO_MIN_VERSION")

	return cfg, nil
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
