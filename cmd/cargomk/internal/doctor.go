package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/cargo"
	"github.com/crateops/cargomk/internal/toolchain"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the installed cargo toolchain",
	Long: `Doctor reports the cargo binary found on PATH, its version, and
whether the cargo-edit extension needed by upgrade-deps is installed.
When min-cargo-version is configured, an older cargo is an error.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	info, err := toolchain.Probe(cmd.Context(), cargo.DefaultBin)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cargo %s (%s)\n", info.Version, info.Path)

	if toolchain.HasExtension("upgrade") {
		fmt.Fprintln(out, "cargo-edit: installed")
	} else {
		fmt.Fprintln(out, "cargo-edit: not installed, upgrade-deps will fail")
	}

	if cfg.MinCargoVersion != "" {
		if !toolchain.Meets(info.Version, cfg.MinCargoVersion) {
			return fmt.Errorf("cargo %s is older than required minimum %s", info.Version, cfg.MinCargoVersion)
		}
		fmt.Fprintf(out, "minimum version %s: satisfied\n", cfg.MinCargoVersion)
	}
	return nil
}
