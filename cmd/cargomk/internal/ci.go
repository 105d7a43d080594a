package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var ciCmd = &cobra.Command{
	Use:   "ci",
	Short: "Run the continuous-integration sequence: fmt, lint, test",
	Long: `Ci runs fmt, lint and test in order, stopping at the first failure.
The exit status is that of the first failing step.`,
	Args: cobra.NoArgs,
	RunE: runSequence(task.CI),
}

func init() {
	rootCmd.AddCommand(ciCmd)
}
