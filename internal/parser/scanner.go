package parser

import (
	"strings"
	"unicode/utf8"
)

// Tokenize returns the token starting at offset. It never fails: input it
// cannot classify becomes an UNKNOWN token one rune wide, and offsets at or
// past the end of the input produce a zero-width EOF token.
func Tokenize(source string, offset int) Token {
	if offset >= len(source) {
		return Token{Kind: EOF, Range: Range{Start: len(source), End: len(source)}}
	}

	s := cursor{source: source, start: offset, current: offset}
	return s.scanToken()
}

// cursor walks a single token; Tokenize builds a fresh one per call.
type cursor struct {
	source  string
	start   int
	current int
}

func (s *cursor) scanToken() Token {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '|':
		return s.makeToken(SEPARATOR)
	case '=':
		return s.makeToken(EQ)
	case ':':
		return s.makeToken(COLON)
	case '#':
		return s.makeToken(POUND)
	case '!':
		return s.makeToken(BANG)
	case '$':
		return s.makeToken(DOLLAR)
	case '(':
		return s.makeToken(OPEN_PAREN)
	case ')':
		return s.makeToken(CLOSE_PAREN)
	case '.':
		return s.makeToken(DOT)

	case '-':
		if isDigit(s.peek()) {
			return s.scanNumber()
		}
		return s.makeToken(MINUS)
	case '/':
		if s.peek() == '/' {
			return s.scanComment()
		}
		return s.scanUnknown()

	case ' ', '\t', '\r':
		for isBlank(s.peek()) {
			s.advance()
		}
		return s.makeToken(WHITESPACE)
	case '\n':
		return s.makeToken(NEWLINE)

	case '"':
		return s.scanString()

	default:
		return s.scanDefault(c)
	}
}

func (s *cursor) scanDefault(c byte) Token {
	if isDigit(c) {
		return s.scanNumber()
	} else if isAlpha(c) {
		return s.scanIdentifier()
	}
	return s.scanUnknown()
}

func (s *cursor) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *cursor) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *cursor) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *cursor) makeToken(kind TokenKind) Token {
	return Token{Kind: kind, Range: Range{Start: s.start, End: s.current}}
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func (s *cursor) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(IDENTIFIER)
}

// scanNumber is entered after the first digit or the sign.
func (s *cursor) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(NUMBER)
}

// scanString stops at the closing quote, or before the newline / end of
// input when there is none.
func (s *cursor) scanString() Token {
	for !s.isAtEnd() && s.peek() != '"' && s.peek() != '\n' {
		s.advance()
	}
	terminated := s.peek() == '"'
	if terminated {
		s.advance()
	}
	tok := s.makeToken(STRING)
	tok.Terminated = terminated
	return tok
}

func (s *cursor) scanComment() Token {
	for !s.isAtEnd() && s.peek() != '\n' {
		s.advance()
	}
	text := s.source[s.start:s.current]
	kind := Note
	if strings.HasPrefix(text, "////") {
		kind = ConfigDoc
	} else if strings.HasPrefix(text, "///") {
		kind = HeaderDoc
	}
	tok := s.makeToken(COMMENT)
	tok.Comment = kind
	return tok
}

// scanUnknown keeps multi-byte characters in one token so ranges stay on
// rune boundaries.
func (s *cursor) scanUnknown() Token {
	_, size := utf8.DecodeRuneInString(s.source[s.start:])
	s.current = s.start + size
	return s.makeToken(UNKNOWN)
}

// CommentText returns the text of a comment token with its marker removed
// and surrounding whitespace trimmed.
func CommentText(source string, tok Token) string {
	text := source[tok.Range.Start:tok.Range.End]
	return strings.TrimSpace(text[tok.Comment.markerLen():])
}

type Scanner struct {
	source string
	tokens []Token
}

func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// ScanTokens tokenizes the whole source. The result always ends with
// exactly one EOF token.
func (s *Scanner) ScanTokens() []Token {
	offset := 0
	for {
		tok := Tokenize(s.source, offset)
		s.tokens = append(s.tokens, tok)
		if tok.Kind == EOF {
			return s.tokens
		}
		offset = tok.Range.End
	}
}
