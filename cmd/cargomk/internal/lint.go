package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the crate with clippy",
	Long: `Lint runs "cargo clippy" with the composed flags plus --all-targets,
treating warnings as errors.`,
	Args: cobra.NoArgs,
	RunE: runTask(task.Lint),
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
