package parser

import (
	"fmt"
	"strings"
)

type Keyword[T any] struct {
	Name  string
	Value T
}

// KeywordTable routes identifiers to values of T. Lookup ignores case.
type KeywordTable[T any] []Keyword[T]

func (t KeywordTable[T]) Lookup(name string) (T, bool) {
	for _, kw := range t {
		if strings.EqualFold(kw.Name, name) {
			return kw.Value, true
		}
	}
	var zero T
	return zero, false
}

func (t KeywordTable[T]) Names() []string {
	names := make([]string, len(t))
	for i, kw := range t {
		names[i] = kw.Name
	}
	return names
}

// Closest returns the keyword nearest to name, if any is within two edits.
func (t KeywordTable[T]) Closest(name string) (string, bool) {
	best, bestDistance := "", 3
	for _, kw := range t {
		d := levenshteinDistance(strings.ToLower(name), strings.ToLower(kw.Name))
		if d < bestDistance {
			best, bestDistance = kw.Name, d
		}
	}
	return best, best != ""
}

// ParseIdent eats an identifier and routes it through the keyword table.
func ParseIdent[T any](p *Parser, table KeywordTable[T], suggestion Suggestion) (T, error) {
	var zero T
	tok, err := p.EatOrSuggest(IDENTIFIER, suggestion)
	if err != nil {
		return zero, err
	}
	text := p.ReadToken(tok)
	value, ok := table.Lookup(text)
	if !ok {
		message := fmt.Sprintf("unknown %s %q", suggestion, text)
		if closest, found := table.Closest(text); found {
			message += fmt.Sprintf(", did you mean %q?", closest)
		}
		return zero, p.Error(message, tok.Range).WithSuggestion(suggestion).WithKind(InvalidValue)
	}
	return value, nil
}

// ParseNumber eats a number token and decodes its text.
func ParseNumber[T any](p *Parser, decode func(string) (T, error), suggestion Suggestion) (T, error) {
	var zero T
	tok, err := p.EatOrSuggest(NUMBER, suggestion)
	if err != nil {
		return zero, err
	}
	value, err := decode(p.ReadToken(tok))
	if err != nil {
		return zero, p.Invalid(tok, suggestion, err)
	}
	return value, nil
}

// Invalid reports a token whose text failed to decode as the expected
// construct.
func (p *Parser) Invalid(tok Token, suggestion Suggestion, cause error) *ParseError {
	message := fmt.Sprintf("invalid %s %q", suggestion, p.ReadToken(tok))
	if cause != nil {
		message += ": " + cause.Error()
	}
	return p.Error(message, tok.Range).WithSuggestion(suggestion).WithKind(InvalidValue)
}

// ParseString eats a string token and returns its content without quotes.
// Unterminated strings are only reported here, when the grammar consumes
// them.
func ParseString(p *Parser, suggestion Suggestion) (string, error) {
	tok := p.CurrentToken()
	if tok.Kind != STRING {
		return "", p.Error("expected string", tok.Range).WithSuggestion(suggestion)
	}
	p.NextToken()
	if !tok.Terminated {
		return "", p.Error("unterminated string", tok.Range).WithKind(UnterminatedString)
	}
	return p.Read(Range{Start: tok.Range.Start + 1, End: tok.Range.End - 1}), nil
}

// Simple Levenshtein distance for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[i] = min(previous[i]+1, current[i-1]+1, previous[i-1]+cost)
		}
		previous = current
	}

	return previous[len(a)]
}
