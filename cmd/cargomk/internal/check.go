package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Type-check the crate without producing artifacts",
	Long:  `Check runs "cargo check" with the composed flags.`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.Check),
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
