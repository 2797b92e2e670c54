package parser

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError for reporting.
type ErrorKind int

const (
	// GrammarError is an expected token or keyword that was not found.
	GrammarError ErrorKind = iota
	// UnterminatedString is a string literal without a closing quote on its line.
	UnterminatedString
	// MissingSeparator is an absent field or statement separator.
	MissingSeparator
	// InvalidValue is a token of the right kind whose text does not decode.
	InvalidValue
)

type ParseError struct {
	Message    string
	Range      Range
	Suggestion Suggestion
	Kind       ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Message)
}

func (e *ParseError) WithSuggestion(s Suggestion) *ParseError {
	e.Suggestion = s
	return e
}

func (e *ParseError) WithKind(kind ErrorKind) *ParseError {
	e.Kind = kind
	return e
}

// ParseErrorCollection holds every error of one parse, in the order they
// were found. A non-empty collection rejects the whole document.
type ParseErrorCollection []*ParseError

func (c *ParseErrorCollection) Push(err *ParseError) {
	*c = append(*c, err)
}

func (c ParseErrorCollection) IsEmpty() bool {
	return len(c) == 0
}

func (c ParseErrorCollection) Error() string {
	messages := make([]string, len(c))
	for i, err := range c {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "\n")
}
