package lsp

import (
	"strings"

	"seedheader/internal/parser"
)

// SemanticTokenTypes is the legend advertised to the client. TokenType
// values index into it.
var SemanticTokenTypes = []string{
	"comment",
	"keyword",
	"number",
	"string",
	"operator",
	"function",
	"parameter",
	"modifier",
	"enumMember",
}

// SemanticTokenModifiers is the modifier legend. TokenModifiers is a
// bitmask over it.
var SemanticTokenModifiers = []string{
	"documentation",
}

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// lineState tracks the significant tokens seen so far on the current line.
type lineState struct {
	first    parser.TokenKind
	count    int
	bangs    int
	prev     parser.TokenKind
	prevText string
	inParam  bool
}

// collectSemanticTokens classifies the raw token stream. Identifiers are
// told apart by their place on the line: the first word of a line is a
// setup keyword along with its kind, the word after `!!` a command, the word after `#` an
// annotation, and `$Param(name)` a function with its parameter.
func collectSemanticTokens(source string, index *parser.LineIndex) []SemanticToken {
	var tokens []SemanticToken
	var state lineState

	for _, tok := range parser.NewScanner(source).ScanTokens() {
		switch tok.Kind {
		case parser.EOF, parser.WHITESPACE, parser.UNKNOWN:
			continue
		case parser.NEWLINE:
			state = lineState{}
			continue
		}

		tokenType, modifiers := classify(tok, &state)
		if tokenType != "" {
			tokens = append(tokens, makeToken(index, tok.Range, tokenType, modifiers))
		}

		if state.count == 0 {
			state.first = tok.Kind
		}
		if tok.Kind == parser.BANG && state.count == state.bangs {
			state.bangs++
		}
		if tok.Kind == parser.OPEN_PAREN {
			state.inParam = state.prev == parser.IDENTIFIER && strings.EqualFold(state.prevText, "Param")
		}
		state.count++
		state.prev = tok.Kind
		state.prevText = source[tok.Range.Start:tok.Range.End]
	}

	return tokens
}

func classify(tok parser.Token, state *lineState) (string, int) {
	switch tok.Kind {
	case parser.COMMENT:
		if tok.Comment != parser.Note {
			return "comment", 1 << indexOf("documentation", SemanticTokenModifiers)
		}
		return "comment", 0
	case parser.NUMBER:
		return "number", 0
	case parser.STRING:
		return "string", 0
	case parser.IDENTIFIER:
		return classifyIdentifier(state), 0
	case parser.SEPARATOR, parser.EQ, parser.COLON, parser.MINUS, parser.DOT,
		parser.BANG, parser.DOLLAR, parser.POUND, parser.OPEN_PAREN, parser.CLOSE_PAREN:
		return "operator", 0
	}
	return "", 0
}

func classifyIdentifier(state *lineState) string {
	switch {
	case state.count == 0:
		return "keyword"
	case state.first == parser.IDENTIFIER && (state.count == 1 || state.count == 2 && (state.prev == parser.DOT || state.prev == parser.SEPARATOR)):
		return "keyword"
	case state.prev == parser.BANG && state.bangs == 2 && state.count == 2:
		return "keyword"
	case state.prev == parser.POUND && state.first == parser.POUND && state.count == 1:
		return "modifier"
	case state.prev == parser.DOLLAR:
		return "function"
	case state.prev == parser.OPEN_PAREN && state.inParam:
		return "parameter"
	}
	return "enumMember"
}

// makeToken creates a semantic token for a byte range on one line
func makeToken(index *parser.LineIndex, r parser.Range, tokenType string, modifiers int) SemanticToken {
	start := toProtocolPosition(index, r.Start)
	line := index.Line(int(start.Line) + 1)
	lineStart := r.Start - (index.Position(r.Start).Column - 1)
	end := utf16Column(line, r.End-lineStart)

	return SemanticToken{
		Line:           start.Line,
		StartChar:      start.Character,
		Length:         end - start.Character,
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
