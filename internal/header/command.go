package header

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"seedheader/internal/parser"
)

// HeaderCommand is the payload of a `!!` statement.
type HeaderCommand interface {
	headerCommand()
}

// IncludeCommand pulls another header into the seed.
type IncludeCommand struct {
	Name string
}

// ExcludeCommand keeps another header out of the seed.
type ExcludeCommand struct {
	Name string
}

// AddCommand adds an item to the item pool.
type AddCommand struct {
	Item VItem
}

// RemoveCommand removes an item from the item pool.
type RemoveCommand struct {
	Item VItem
}

// SetCommand gives an uber state its initial value.
type SetCommand struct {
	Identifier UberIdentifier
	Value      V[string]
}

// ParameterCommand declares a parameter usable through $Param(name).
type ParameterCommand struct {
	Name    string
	Type    ParameterType
	Default string
}

func (IncludeCommand) headerCommand()   {}
func (ExcludeCommand) headerCommand()   {}
func (AddCommand) headerCommand()       {}
func (RemoveCommand) headerCommand()    {}
func (SetCommand) headerCommand()       {}
func (ParameterCommand) headerCommand() {}

type ParameterType int

const (
	BoolParameter ParameterType = iota
	IntParameter
	FloatParameter
	StringParameter
)

var parameterTypes = parser.KeywordTable[ParameterType]{
	{Name: "bool", Value: BoolParameter},
	{Name: "int", Value: IntParameter},
	{Name: "float", Value: FloatParameter},
	{Name: "string", Value: StringParameter},
}

func (t ParameterType) String() string {
	return parameterTypes[t].Name
}

// validate checks a default value against the type.
func (t ParameterType) validate(text string) error {
	var err error
	switch t {
	case BoolParameter:
		_, err = strconv.ParseBool(text)
	case IntParameter:
		_, err = decodeInt32(text)
	case FloatParameter:
		_, err = strconv.ParseFloat(text, 32)
	}
	if err != nil {
		return fmt.Errorf("not a valid %s", t)
	}
	return nil
}

// The command grammar sees only the segment after `!!` up to the end of
// the line. Item and value operands are captured as raw spans and handed
// back to the cursor grammar at their offsets.
var commandLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"String", `"[^"\n]*"`, nil},
		{"Unterminated", `"[^"\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Number", `-?[0-9]+(\.[0-9]+)?`, nil},
		{"Punct", `[|=:$().#!-]`, nil},
		{"Whitespace", `[ \t\r]+`, nil},
		{"Unknown", `.`, nil},
	},
})

type commandSyntax struct {
	Include   *nameOperand      `  "include" @@`
	Exclude   *nameOperand      `| "exclude" @@`
	Add       *spanOperand      `| "add" @@`
	Remove    *spanOperand      `| "remove" @@`
	Set       *spanOperand      `| "set" @@`
	Parameter *parameterOperand `| "parameter" @@`
}

type nameOperand struct {
	Name string `@Ident`
}

type spanOperand struct {
	Pos   lexer.Position
	Parts []string `@(Ident | Number | String | Unterminated | Punct | Unknown)+`
}

type parameterOperand struct {
	Name    string       `@Ident`
	Type    *typeOperand `@@ ":"`
	Default *spanOperand `@@`
}

type typeOperand struct {
	Pos  lexer.Position
	Name string `@Ident`
}

var commandParser = participle.MustBuild[commandSyntax](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

var commandSuggestions = map[string]parser.Suggestion{
	"include":   parser.Identifier,
	"exclude":   parser.Identifier,
	"add":       parser.ItemKind,
	"remove":    parser.ItemKind,
	"set":       parser.UberGroup,
	"parameter": parser.ParameterType,
}

// commandSegment is the part of the line holding one command.
type commandSegment struct {
	start, end int
	keyword    parser.Token
}

// ParseCommand parses the command following `!!`. On success the cursor is
// left at the end of the command's line content.
func ParseCommand(p *parser.Parser) (HeaderCommand, error) {
	p.Skip(parser.WHITESPACE)
	seg := commandSegment{start: p.CurrentToken().Range.Start, keyword: p.CurrentToken()}
	p.SkipWhile(func(kind parser.TokenKind) bool {
		return kind != parser.COMMENT && kind != parser.NEWLINE
	})
	seg.end = p.CurrentToken().Range.Start

	syntax, err := commandParser.ParseString("", p.Read(parser.Range{Start: seg.start, End: seg.end}))
	if err != nil {
		return nil, seg.syntaxError(p, err)
	}

	switch {
	case syntax.Include != nil:
		return IncludeCommand{Name: syntax.Include.Name}, nil
	case syntax.Exclude != nil:
		return ExcludeCommand{Name: syntax.Exclude.Name}, nil
	case syntax.Add != nil:
		item, err := seg.parseItem(p, syntax.Add)
		if err != nil {
			return nil, err
		}
		return AddCommand{Item: item}, nil
	case syntax.Remove != nil:
		item, err := seg.parseItem(p, syntax.Remove)
		if err != nil {
			return nil, err
		}
		return RemoveCommand{Item: item}, nil
	case syntax.Set != nil:
		return seg.parseSet(p, syntax.Set)
	default:
		return seg.parseParameter(p, syntax.Parameter)
	}
}

// syntaxError places a participle error at the token under its absolute
// offset.
func (seg commandSegment) syntaxError(p *parser.Parser, err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return p.Error(err.Error(), seg.keyword.Range)
	}
	offset := seg.start + perr.Position().Offset
	tok := parser.Tokenize(p.Input(), offset)

	suggestion := parser.HeaderCommand
	if offset > seg.keyword.Range.Start && seg.keyword.Kind == parser.IDENTIFIER {
		if s, ok := commandSuggestions[strings.ToLower(p.ReadToken(seg.keyword))]; ok {
			suggestion = s
		}
	}
	return p.Error(perr.Message(), tok.Range).WithSuggestion(suggestion)
}

// operand moves the cursor onto a span captured by the command grammar.
func (seg commandSegment) operand(p *parser.Parser, span *spanOperand) {
	p.Seek(seg.start + span.Pos.Offset)
}

// finish requires the cursor grammar to have consumed the whole segment.
func (seg commandSegment) finish(p *parser.Parser) error {
	p.Skip(parser.WHITESPACE)
	if tok := p.CurrentToken(); tok.Range.Start < seg.end {
		return p.Error(fmt.Sprintf("unexpected %q after command", p.ReadToken(tok)), tok.Range)
	}
	return nil
}

func (seg commandSegment) parseItem(p *parser.Parser, span *spanOperand) (VItem, error) {
	seg.operand(p, span)
	item, err := ParseItem(p)
	if err != nil {
		return nil, err
	}
	if err := seg.finish(p); err != nil {
		return nil, err
	}
	return item, nil
}

func (seg commandSegment) parseSet(p *parser.Parser, span *spanOperand) (HeaderCommand, error) {
	seg.operand(p, span)
	identifier, err := parseUberIdentifier(p)
	if err != nil {
		return nil, err
	}
	if eq := p.CurrentToken(); eq.Kind != parser.EQ {
		return nil, p.Error(fmt.Sprintf("expected %s", parser.EQ), eq.Range).WithSuggestion(parser.UberConditionValue)
	}
	p.NextToken()
	var value V[string]
	if p.CurrentToken().Kind == parser.IDENTIFIER {
		value, err = parseVIdent(p, decodeString, parser.Boolean)
	} else {
		value, err = parseVNumber(p, decodeString, parser.Integer)
	}
	if err != nil {
		return nil, err
	}
	if err := seg.finish(p); err != nil {
		return nil, err
	}
	return SetCommand{Identifier: identifier, Value: value}, nil
}

func (seg commandSegment) parseParameter(p *parser.Parser, syntax *parameterOperand) (HeaderCommand, error) {
	typeRange := parser.Range{
		Start: seg.start + syntax.Type.Pos.Offset,
		End:   seg.start + syntax.Type.Pos.Offset + len(syntax.Type.Name),
	}
	paramType, ok := parameterTypes.Lookup(syntax.Type.Name)
	if !ok {
		message := fmt.Sprintf("unknown %s %q", parser.ParameterType, syntax.Type.Name)
		if closest, found := parameterTypes.Closest(syntax.Type.Name); found {
			message += fmt.Sprintf(", did you mean %q?", closest)
		}
		return nil, p.Error(message, typeRange).
			WithSuggestion(parser.ParameterType).
			WithKind(parser.InvalidValue)
	}

	defaultRange := parser.Range{Start: seg.start + syntax.Default.Pos.Offset, End: seg.end}
	text := strings.TrimSpace(p.Read(defaultRange))
	defaultRange.End = defaultRange.Start + len(text)
	if paramType == StringParameter {
		if unquoted, ok := strings.CutPrefix(text, `"`); ok {
			text, ok = strings.CutSuffix(unquoted, `"`)
			if !ok {
				return nil, p.Error("unterminated string", defaultRange).WithKind(parser.UnterminatedString)
			}
		}
	} else if err := paramType.validate(text); err != nil {
		return nil, p.Error(fmt.Sprintf("invalid default %q: %s", text, err), defaultRange).
			WithSuggestion(paramType.suggestion()).
			WithKind(parser.InvalidValue)
	}

	p.Seek(seg.end)
	return ParameterCommand{Name: syntax.Name, Type: paramType, Default: text}, nil
}

func (t ParameterType) suggestion() parser.Suggestion {
	switch t {
	case BoolParameter:
		return parser.Boolean
	case FloatParameter:
		return parser.Float
	case IntParameter:
		return parser.Integer
	default:
		return parser.NoSuggestion
	}
}
