package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var updateDepsCmd = &cobra.Command{
	Use:   "update-deps",
	Short: "Refresh lockfile versions within declared constraints",
	Long:  `Update-deps runs "cargo update --verbose".`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.UpdateDeps),
}

var upgradeDepsCmd = &cobra.Command{
	Use:   "upgrade-deps",
	Short: "Bump declared dependency version constraints",
	Long: `Upgrade-deps runs "cargo upgrade --verbose", which requires the
cargo-edit extension. When the extension is missing, cargo's own error
is reported unchanged. Run "cargomk doctor" to check for it up front.`,
	Args: cobra.NoArgs,
	RunE: runTask(task.UpgradeDeps),
}

func init() {
	rootCmd.AddCommand(updateDepsCmd, upgradeDepsCmd)
}
