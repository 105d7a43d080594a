package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the crate's test suite",
	Long:  `Test runs "cargo test" with the composed flags followed by TEST_FLAGS.`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.Test),
}

func init() {
	rootCmd.AddCommand(testCmd)
}
