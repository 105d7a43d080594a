package internal

import (
	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/task"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Format the crate's sources",
	Long:  `Fmt runs "cargo fmt". Formatting takes no composed flags.`,
	Args:  cobra.NoArgs,
	RunE:  runTask(task.Fmt),
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
