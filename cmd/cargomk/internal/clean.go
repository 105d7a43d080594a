package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts",
	Long:  `Clean runs "cargo clean".`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.Clean),
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
