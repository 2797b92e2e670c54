package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"seedheader/internal/errors"
	"seedheader/internal/header"
	"seedheader/internal/parser"
)

var errCheckFailed = stderrors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parses header files and reports their errors",
	Long: `Parses each header file and prints every error with its location,
the offending line and a hint at what was expected.

Exits with a non-zero status when any file fails to parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	startTime := time.Now()

	failed := 0
	for _, path := range args {
		if !checkFile(cmd, path) {
			failed++
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		fmt.Fprintln(out, color.RedString("%d of %d files failed after %s", failed, len(args), duration))
		return errCheckFailed
	}
	fmt.Fprintln(out, color.GreenString("Checked %d files in %s", len(args), duration))
	return nil
}

func checkFile(cmd *cobra.Command, path string) bool {
	out := cmd.OutOrStdout()

	source, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("reading %s: %s", path, err)
		reporter := errors.NewErrorReporter(path, "")
		fmt.Fprint(out, reporter.FormatError(errors.UnreadableFile(path, err)))
		return false
	}

	contents, err := header.Parse(string(source))
	if err == nil {
		log.Infof("%s: %d statements", path, len(contents))
		fmt.Fprintf(out, "%s %s\n", color.GreenString("ok"), path)
		return true
	}

	var errs parser.ParseErrorCollection
	if !stderrors.As(err, &errs) {
		fmt.Fprintf(out, "%s: %v\n", path, err)
		return false
	}

	reporter := errors.NewErrorReporter(path, string(source)).WithContext(cfg.Diagnostics.Context)
	fmt.Fprint(out, reporter.FormatParseErrors(errs, cfg.Diagnostics.MaxErrors))
	return false
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}
