package header

import (
	"seedheader/internal/parser"
)

const skipValidateNote = "skip-validate"

type expressionIdentKind int

const (
	setupExpression expressionIdentKind = iota
)

var expressionIdentKinds = parser.KeywordTable[expressionIdentKind]{
	{Name: "Setup", Value: setupExpression},
}

type setupKind int

const (
	timerSetup setupKind = iota
)

var setupKinds = parser.KeywordTable[setupKind]{
	{Name: "Timer", Value: timerSetup},
}

// parseContext is the state of one Parse call.
type parseContext struct {
	parser   *parser.Parser
	contents []HeaderContent
	// skipValidation is set by a skip-validate note and applies to the
	// next statement only.
	skipValidation bool
}

// Parse parses a header document. On failure the error is a
// parser.ParseErrorCollection holding every error found, and no contents
// are returned.
func Parse(input string) ([]HeaderContent, error) {
	ctx := &parseContext{parser: parser.New(input)}
	var errs parser.ParseErrorCollection

	for {
		ctx.parseWhitespace()
		if ctx.parser.CurrentToken().Kind == parser.EOF {
			break
		}
		content, err := ctx.parseExpression()
		if err == nil {
			ctx.contents = append(ctx.contents, content)
			ctx.parser.SkipWhile(isTrivia)
			if ctx.parser.CurrentToken().Kind == parser.EOF {
				break
			}
			_, err = ctx.parser.Eat(parser.NEWLINE)
		}
		if err != nil {
			recoverFrom(err, &errs, ctx.parser)
		}
		ctx.skipValidation = false
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return ctx.contents, nil
}

// recoverFrom records err and resynchronizes on the next line.
func recoverFrom(err error, errs *parser.ParseErrorCollection, p *parser.Parser) {
	errs.Push(asParseError(err, p))
	p.SkipWhile(func(kind parser.TokenKind) bool { return kind != parser.NEWLINE })
	p.NextToken()
}

func asParseError(err error, p *parser.Parser) *parser.ParseError {
	if perr, ok := err.(*parser.ParseError); ok {
		return perr
	}
	return p.Error(err.Error(), p.CurrentToken().Range)
}

func isTrivia(kind parser.TokenKind) bool {
	return kind == parser.WHITESPACE || kind == parser.COMMENT
}

// parseWhitespace skips blank lines and comments between statements.
// Documentation comments become contents, and a skip-validate note marks
// the next statement.
func (ctx *parseContext) parseWhitespace() {
	p := ctx.parser
	for {
		tok := p.CurrentToken()
		switch tok.Kind {
		case parser.NEWLINE, parser.WHITESPACE:
		case parser.COMMENT:
			text := parser.CommentText(p.Input(), tok)
			switch tok.Comment {
			case parser.Note:
				if text == skipValidateNote {
					ctx.skipValidation = true
				}
			case parser.HeaderDoc:
				ctx.contents = append(ctx.contents, OuterDocumentation{Text: text})
			case parser.ConfigDoc:
				ctx.contents = append(ctx.contents, InnerDocumentation{Text: text})
			}
		default:
			return
		}
		p.NextToken()
	}
}

func (ctx *parseContext) parseExpression() (HeaderContent, error) {
	p := ctx.parser
	tok := p.CurrentToken()
	switch tok.Kind {
	case parser.IDENTIFIER:
		kind, err := parser.ParseIdent(p, expressionIdentKinds, parser.Expression)
		if err != nil {
			return nil, err
		}
		p.Skip(parser.WHITESPACE)
		switch kind {
		case setupExpression:
			return parseSetup(p)
		}
	case parser.BANG:
		p.NextToken()
		if p.CurrentToken().Kind == parser.BANG {
			p.NextToken()
			return parseCommand(p)
		}
		return ctx.parsePickup(true)
	case parser.NUMBER, parser.DOLLAR:
		return ctx.parsePickup(false)
	case parser.POUND:
		p.NextToken()
		return parseAnnotation(p)
	}
	return nil, p.Error("expected expression", tok.Range).WithSuggestion(parser.Expression)
}

// parseSetup accepts `Setup Timer|…`, `Setup|Timer|…` and `Setup.Timer|…`.
func parseSetup(p *parser.Parser) (HeaderContent, error) {
	if kind := p.CurrentToken().Kind; kind == parser.DOT || kind == parser.SEPARATOR {
		p.NextToken()
	}
	kind, err := parser.ParseIdent(p, setupKinds, parser.SetupKind)
	if err != nil {
		return nil, err
	}
	if _, err := p.EatOrSuggest(parser.SEPARATOR, parser.SetupKind); err != nil {
		return nil, err
	}

	var setup Setup
	switch kind {
	case timerSetup:
		setup, err = parseTimer(p)
	}
	if err != nil {
		return nil, err
	}
	return SetupStatement{Setup: setup}, nil
}

func parseTimer(p *parser.Parser) (Setup, error) {
	toggle, err := parseUberIdentifier(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.EatOrSuggest(parser.SEPARATOR, parser.UberId); err != nil {
		return nil, err
	}
	counter, err := parseUberIdentifier(p)
	if err != nil {
		return nil, err
	}
	return SetupTimer{Switch: toggle, Counter: counter}, nil
}

func parseCommand(p *parser.Parser) (HeaderContent, error) {
	command, err := ParseCommand(p)
	if err != nil {
		return nil, err
	}
	return CommandStatement{Command: command}, nil
}

func (ctx *parseContext) parsePickup(ignore bool) (HeaderContent, error) {
	p := ctx.parser

	identifier, err := parseUberIdentifier(p)
	if err != nil {
		return nil, err
	}
	value, suggestion := Literal(""), parser.UberId
	if p.CurrentToken().Kind == parser.EQ {
		p.NextToken()
		value, err = parseVNumber(p, decodeString, parser.UberTriggerValue)
		if err != nil {
			return nil, err
		}
		suggestion = parser.UberTriggerValue
	}
	trigger := VUberState{Identifier: identifier, Value: value}

	if _, err := p.EatOrSuggest(parser.SEPARATOR, suggestion); err != nil {
		return nil, err
	}

	item, err := ParseItem(p)
	if err != nil {
		return nil, err
	}

	return VPickup{
		Trigger:        trigger,
		Item:           item,
		Ignore:         ignore,
		SkipValidation: ctx.skipValidation,
	}, nil
}

func parseAnnotation(p *parser.Parser) (HeaderContent, error) {
	tok, err := p.EatOrSuggest(parser.IDENTIFIER, parser.Annotation)
	if err != nil {
		return nil, err
	}
	return Annotation{Name: p.ReadToken(tok)}, nil
}
