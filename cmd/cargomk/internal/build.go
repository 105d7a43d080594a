package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Build the crate in debug mode",
	Long:  `Debug runs "cargo build" with the composed flags.`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.Debug),
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Build the crate in release mode",
	Long:  `Release runs "cargo build" with the composed flags plus --release.`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.Release),
}

func init() {
	rootCmd.AddCommand(debugCmd, releaseCmd)
}
