package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seedheader/internal/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Prints the token stream of a header file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	text := string(source)
	index := parser.NewLineIndex(text)
	out := cmd.OutOrStdout()

	for _, tok := range parser.NewScanner(text).ScanTokens() {
		pos := index.Position(tok.Range.Start)
		kind := tok.Kind.String()
		switch tok.Kind {
		case parser.COMMENT:
			kind += " (" + tok.Comment.String() + ")"
		case parser.STRING:
			if !tok.Terminated {
				kind += " (unterminated)"
			}
		}
		fmt.Fprintf(out, "%d:%d\t%s\t%q\n", pos.Line, pos.Column, kind, text[tok.Range.Start:tok.Range.End])
	}
	return nil
}
