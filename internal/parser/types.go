package parser

import "fmt"

type TokenKind int

const (
	// Special tokens
	EOF TokenKind = iota
	UNKNOWN

	// Literals
	IDENTIFIER
	NUMBER
	STRING

	// Trivia
	WHITESPACE
	NEWLINE
	COMMENT

	// Punctuation
	SEPARATOR   // |
	EQ          // =
	COLON       // :
	POUND       // #
	BANG        // !
	DOLLAR      // $
	OPEN_PAREN  // (
	CLOSE_PAREN // )
	MINUS       // -
	DOT         // .
)

var tokenNames = map[TokenKind]string{
	EOF:         "end of file",
	UNKNOWN:     "unknown character",
	IDENTIFIER:  "identifier",
	NUMBER:      "number",
	STRING:      "string",
	WHITESPACE:  "whitespace",
	NEWLINE:     "newline",
	COMMENT:     "comment",
	SEPARATOR:   "'|'",
	EQ:          "'='",
	COLON:       "':'",
	POUND:       "'#'",
	BANG:        "'!'",
	DOLLAR:      "'$'",
	OPEN_PAREN:  "'('",
	CLOSE_PAREN: "')'",
	MINUS:       "'-'",
	DOT:         "'.'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// CommentKind distinguishes the three comment markers.
type CommentKind int

const (
	Note      CommentKind = iota // //
	HeaderDoc                    // ///
	ConfigDoc                    // ////
)

// markerLen is the number of bytes the comment marker occupies.
func (c CommentKind) markerLen() int {
	switch c {
	case HeaderDoc:
		return 3
	case ConfigDoc:
		return 4
	default:
		return 2
	}
}

func (c CommentKind) String() string {
	switch c {
	case HeaderDoc:
		return "header doc"
	case ConfigDoc:
		return "config doc"
	default:
		return "note"
	}
}

// Range is a half-open byte range [Start, End) into the input.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

type Token struct {
	Kind  TokenKind
	Range Range

	// Terminated is only meaningful for STRING tokens.
	Terminated bool
	// Comment is only meaningful for COMMENT tokens.
	Comment CommentKind
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
