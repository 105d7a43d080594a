package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the full pipeline: fmt, lint, test, release",
	Long: `All runs fmt, lint, test and release in order, stopping at the first
failure. It is also what cargomk runs when no task is named.`,
	Args: cobra.NoArgs,
	RunE: runSequence(task.All),
}

func init() {
	rootCmd.AddCommand(allCmd)
}
