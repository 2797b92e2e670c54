package parser

import "fmt"

// Parser is a cursor over the token stream of an immutable input. Tokens
// are produced on demand by Tokenize, so the parser only holds the input
// and its one token of lookahead.
type Parser struct {
	input   string
	current Token
}

func New(input string) *Parser {
	return NewAt(input, 0)
}

// NewAt starts the cursor at an arbitrary byte offset. The offset must be
// a token boundary.
func NewAt(input string, offset int) *Parser {
	return &Parser{input: input, current: Tokenize(input, offset)}
}

func (p *Parser) Input() string {
	return p.input
}

// CurrentToken peeks at the next token without consuming it.
func (p *Parser) CurrentToken() Token {
	return p.current
}

// NextToken consumes and returns the current token. At the end of input it
// keeps returning EOF.
func (p *Parser) NextToken() Token {
	tok := p.current
	if tok.Kind != EOF {
		p.current = Tokenize(p.input, tok.Range.End)
	}
	return tok
}

// Seek moves the cursor to a token boundary.
func (p *Parser) Seek(offset int) {
	p.current = Tokenize(p.input, offset)
}

func (p *Parser) Eat(kind TokenKind) (Token, error) {
	if p.current.Kind == kind {
		return p.NextToken(), nil
	}
	return Token{}, p.mismatch(kind, fmt.Sprintf("expected %s", kind))
}

// EatOrSuggest is Eat with a named expectation attached to the failure.
func (p *Parser) EatOrSuggest(kind TokenKind, suggestion Suggestion) (Token, error) {
	if p.current.Kind == kind {
		return p.NextToken(), nil
	}
	message := fmt.Sprintf("expected %s", suggestion)
	if kind == SEPARATOR {
		message = fmt.Sprintf("expected %s after %s", kind, suggestion)
	}
	return Token{}, p.mismatch(kind, message).WithSuggestion(suggestion)
}

func (p *Parser) mismatch(kind TokenKind, message string) *ParseError {
	err := p.Error(message, p.current.Range)
	if kind == SEPARATOR || kind == NEWLINE {
		err.Kind = MissingSeparator
	}
	return err
}

// Skip consumes tokens of one kind. Like SkipWhile it stops at EOF.
func (p *Parser) Skip(kind TokenKind) {
	for p.current.Kind != EOF && p.current.Kind == kind {
		p.NextToken()
	}
}

// SkipWhile consumes tokens while the predicate holds. It never consumes
// EOF, so it terminates for any predicate.
func (p *Parser) SkipWhile(pred func(TokenKind) bool) {
	for p.current.Kind != EOF && pred(p.current.Kind) {
		p.NextToken()
	}
}

func (p *Parser) Read(r Range) string {
	return p.input[r.Start:r.End]
}

func (p *Parser) ReadToken(tok Token) string {
	return p.Read(tok.Range)
}

func (p *Parser) Error(message string, r Range) *ParseError {
	return &ParseError{Message: message, Range: r}
}
