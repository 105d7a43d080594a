package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crateops/cargomk/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cargomk version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "cargomk", buildinfo.Summary())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
