package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seedheader/internal/errors"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Describes a diagnostic code such as H0102",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	code := strings.ToUpper(args[0])
	description := errors.GetErrorDescription(code)
	if description == "Unknown error code" {
		return fmt.Errorf("unknown error code %q", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", code, errors.GetErrorCategory(code), description)
	return nil
}
