// Package repl parses header lines read interactively and echoes what they
// parsed to.
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"

	"seedheader/internal/errors"
	"seedheader/internal/header"
	"seedheader/internal/parser"
)

const PROMPT = ">> "

// Start reads one statement per line until in is exhausted. Each line is
// parsed on its own, so annotations do not carry over.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		contents, err := header.Parse(line)

		var errs parser.ParseErrorCollection
		switch {
		case stderrors.As(err, &errs):
			reporter := errors.NewErrorReporter("<repl>", line).WithContext(false)
			fmt.Fprint(out, reporter.FormatParseErrors(errs, 0))
		case err != nil:
			fmt.Fprintln(out, err)
		default:
			for _, content := range contents {
				fmt.Fprintf(out, "%T %+v\n", content, content)
			}
		}
	}
}
