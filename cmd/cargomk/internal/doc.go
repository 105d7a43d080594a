package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Generate the crate's documentation",
	Long:  `Doc runs "cargo doc" with the composed flags plus --no-deps.`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.Doc),
}

func init() {
	rootCmd.AddCommand(docCmd)
}
