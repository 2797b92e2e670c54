package header

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seedheader/internal/parser"
)

type interpolationCommand int

const (
	paramCommand interpolationCommand = iota
)

var interpolationCommands = parser.KeywordTable[interpolationCommand]{
	{Name: "Param", Value: paramCommand},
}

// parseVIdent parses an identifier literal decoded by decode, or an
// interpolation.
func parseVIdent[T any](p *parser.Parser, decode func(string) (T, error), suggestion parser.Suggestion) (V[T], error) {
	return parseVOrKind(p, parser.IDENTIFIER, decode, suggestion)
}

// parseVNumber parses a number literal decoded by decode, or an
// interpolation.
func parseVNumber[T any](p *parser.Parser, decode func(string) (T, error), suggestion parser.Suggestion) (V[T], error) {
	return parseVOrKind(p, parser.NUMBER, decode, suggestion)
}

func parseVOrKind[T any](p *parser.Parser, kind parser.TokenKind, decode func(string) (T, error), suggestion parser.Suggestion) (V[T], error) {
	tok := p.CurrentToken()
	if tok.Kind != kind {
		return parseV[T](p, suggestion)
	}
	p.NextToken()
	value, err := decode(p.ReadToken(tok))
	if err != nil {
		return V[T]{}, p.Invalid(tok, suggestion, err)
	}
	return Literal(value), nil
}

// parseV parses the interpolation form `$Param(name)`.
func parseV[T any](p *parser.Parser, suggestion parser.Suggestion) (V[T], error) {
	tok := p.CurrentToken()
	if tok.Kind != parser.DOLLAR {
		return V[T]{}, p.Error(fmt.Sprintf("expected %s", suggestion), tok.Range).WithSuggestion(suggestion)
	}
	p.NextToken()

	command, err := parser.ParseIdent(p, interpolationCommands, parser.InterpolationCommand)
	if err != nil {
		return V[T]{}, err
	}
	switch command {
	case paramCommand:
		return parseVParam[T](p)
	}
	return V[T]{}, p.Error("unsupported interpolation command", tok.Range)
}

func parseVParam[T any](p *parser.Parser) (V[T], error) {
	if _, err := p.EatOrSuggest(parser.OPEN_PAREN, parser.InterpolationCommand); err != nil {
		return V[T]{}, err
	}
	tok, err := p.EatOrSuggest(parser.IDENTIFIER, parser.Identifier)
	if err != nil {
		return V[T]{}, err
	}
	name := p.ReadToken(tok)
	if paren := p.CurrentToken(); paren.Kind != parser.CLOSE_PAREN {
		return V[T]{}, p.Error(fmt.Sprintf("expected %s", parser.CLOSE_PAREN), paren.Range).WithSuggestion(parser.Identifier)
	}
	p.NextToken()
	return Param[T](name), nil
}

// parseVRemovableNumber parses a number field whose leading minus marks a
// removal. `-5000` strips the sign before decoding; `-$Param(x)` reads the
// minus as its own token. Both return remove=true.
func parseVRemovableNumber[T any](p *parser.Parser, decode func(string) (T, error), suggestion parser.Suggestion) (V[T], bool, error) {
	tok := p.CurrentToken()
	switch tok.Kind {
	case parser.NUMBER:
		p.NextToken()
		text, remove := strings.CutPrefix(p.ReadToken(tok), "-")
		value, err := decode(text)
		if err != nil {
			return V[T]{}, false, p.Invalid(tok, suggestion, err)
		}
		return Literal(value), remove, nil
	case parser.MINUS:
		p.NextToken()
		value, err := parseVNumber(p, decode, suggestion)
		return value, true, err
	default:
		value, err := parseV[T](p, suggestion)
		return value, false, err
	}
}

// parseRemovableNumber is the literal-only removable number.
func parseRemovableNumber[T any](p *parser.Parser, decode func(string) (T, error), suggestion parser.Suggestion) (T, bool, error) {
	var zero T
	tok, err := p.EatOrSuggest(parser.NUMBER, suggestion)
	if err != nil {
		return zero, false, err
	}
	text, remove := strings.CutPrefix(p.ReadToken(tok), "-")
	value, err := decode(text)
	if err != nil {
		return zero, false, p.Invalid(tok, suggestion, err)
	}
	return value, remove, nil
}

func parseUberIdentifier(p *parser.Parser) (UberIdentifier, error) {
	group, err := parser.ParseNumber(p, decodeUint32, parser.UberGroup)
	if err != nil {
		return UberIdentifier{}, err
	}
	if _, err := p.EatOrSuggest(parser.SEPARATOR, parser.UberGroup); err != nil {
		return UberIdentifier{}, err
	}
	id, err := parser.ParseNumber(p, decodeUint32, parser.UberId)
	if err != nil {
		return UberIdentifier{}, err
	}
	return UberIdentifier{Group: group, ID: id}, nil
}

func decodeUint32(text string) (uint32, error) {
	value, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, numberError(err)
	}
	return uint32(value), nil
}

func decodeInt32(text string) (int32, error) {
	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, numberError(err)
	}
	return int32(value), nil
}

func decodeString(text string) (string, error) {
	return text, nil
}

func numberError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return errors.New("out of range")
	}
	return errors.New("not a valid number")
}

// enumDecoder decodes the numeric id of an enumeration.
func enumDecoder[T ~uint32](names map[T]string) func(string) (T, error) {
	return func(text string) (T, error) {
		id, err := decodeUint32(text)
		if err != nil {
			return 0, err
		}
		if _, ok := names[T(id)]; !ok {
			return 0, errors.New("no such id")
		}
		return T(id), nil
	}
}
