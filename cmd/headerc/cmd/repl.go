package cmd

import (
	"github.com/spf13/cobra"

	"seedheader/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parses header statements typed one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
