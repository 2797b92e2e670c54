package errors

import (
	"fmt"
	"strings"

	"seedheader/internal/header"
	"seedheader/internal/parser"
)

// maxListedValues bounds the "expected one of" note.
const maxListedValues = 8

// ErrorBuilder provides a fluent interface for creating errors with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos parser.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// CodeFor maps a parse error to its diagnostic code.
func CodeFor(kind parser.ErrorKind) string {
	switch kind {
	case parser.UnterminatedString:
		return ErrorUnterminatedString
	case parser.MissingSeparator:
		return ErrorMissingSeparator
	case parser.InvalidValue:
		return ErrorInvalidValue
	default:
		return ErrorGrammar
	}
}

// FromParseError converts a grammar error into a report. A "did you mean"
// hint in the message becomes a suggestion, and the Suggestion label
// becomes the help line.
func FromParseError(index *parser.LineIndex, perr *parser.ParseError) CompilerError {
	message, hint, hinted := strings.Cut(perr.Message, ", did you mean ")
	pos := index.Position(perr.Range.Start)

	// Keep the marker on the reported line.
	line := index.Line(pos.Line)
	length := min(perr.Range.Len(), len(line)-pos.Column+1)

	builder := NewError(CodeFor(perr.Kind), message, pos).WithLength(length)

	if hinted {
		builder = builder.WithReplacement("did you mean "+hint, strings.Trim(hint, `"?`))
	}

	switch perr.Kind {
	case parser.UnterminatedString:
		builder = builder.WithSuggestion(`close the string with '"' before the end of the line`)
	case parser.MissingSeparator:
		builder = builder.WithNote("fields are separated by '|' and statements by line breaks")
	case parser.InvalidValue:
		if values := expectedValues(perr.Suggestion); values != "" {
			builder = builder.WithNote("expected one of: " + values)
		}
	}

	if perr.Suggestion != parser.NoSuggestion {
		builder = builder.WithHelp(fmt.Sprintf("expected %s here", perr.Suggestion))
	}
	return builder.Build()
}

func expectedValues(s parser.Suggestion) string {
	completions := header.Completions(s)
	if len(completions) == 0 {
		return ""
	}
	values := make([]string, 0, maxListedValues)
	for i, c := range completions {
		if i == maxListedValues {
			values = append(values, "...")
			break
		}
		if c.Detail != "" {
			values = append(values, fmt.Sprintf("%s (%s)", c.Label, c.Detail))
		} else {
			values = append(values, c.Label)
		}
	}
	return strings.Join(values, ", ")
}

// UnreadableFile reports a header that could not be loaded.
func UnreadableFile(path string, cause error) CompilerError {
	return NewError(ErrorUnreadableFile, fmt.Sprintf("cannot read '%s': %v", path, cause), parser.Position{}).
		WithHelp("check that the file exists and is readable").
		Build()
}
