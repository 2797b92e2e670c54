package header

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedheader/internal/parser"
)

func TestRemovableNumberForms(t *testing.T) {
	tests := []struct {
		source string
		value  V[uint32]
		remove bool
	}{
		{"5000", Literal[uint32](5000), false},
		{"-5000", Literal[uint32](5000), true},
		{"$Param(x)", Param[uint32]("x"), false},
		{"-$Param(x)", Param[uint32]("x"), true},
		{"-$param(amount)", Param[uint32]("amount"), true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			p := parser.New(tt.source)
			value, remove, err := parseVRemovableNumber(p, decodeUint32, parser.Integer)
			require.NoError(t, err)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.remove, remove)
			assert.Equal(t, parser.EOF, p.CurrentToken().Kind)
		})
	}
}

func TestRemovableNumberErrors(t *testing.T) {
	tests := []struct {
		source     string
		message    string
		suggestion parser.Suggestion
	}{
		{"abc", "expected integer", parser.Integer},
		{"-abc", "expected integer", parser.Integer},
		{"99999999999", `invalid integer "99999999999": out of range`, parser.Integer},
		{"$Foo(x)", `unknown interpolation command "Foo"`, parser.InterpolationCommand},
		{"$Param x", "expected interpolation command", parser.InterpolationCommand},
		{"$Param(5)", "expected identifier", parser.Identifier},
		{"$Param(x", "expected ')'", parser.Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			_, _, err := parseVRemovableNumber(parser.New(tt.source), decodeUint32, parser.Integer)
			var perr *parser.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, tt.suggestion, perr.Suggestion)
		})
	}
}

func TestParseVIdent(t *testing.T) {
	value, err := parseVIdent(parser.New("true"), decodeString, parser.Boolean)
	require.NoError(t, err)
	assert.Equal(t, Literal("true"), value)
	assert.False(t, value.IsParameter())

	value, err = parseVIdent(parser.New("$Param(flag)"), decodeString, parser.Boolean)
	require.NoError(t, err)
	assert.True(t, value.IsParameter())
	assert.Equal(t, "$Param(flag)", value.String())

	_, err = parseVIdent(parser.New("12"), decodeString, parser.Boolean)
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.Boolean, perr.Suggestion)
}

func TestParseUberIdentifier(t *testing.T) {
	id, err := parseUberIdentifier(parser.New("25432|7470"))
	require.NoError(t, err)
	assert.Equal(t, UberIdentifier{Group: 25432, ID: 7470}, id)
	assert.Equal(t, "25432|7470", id.String())

	_, err = parseUberIdentifier(parser.New("-1|2"))
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.UberGroup, perr.Suggestion)
	assert.Equal(t, parser.InvalidValue, perr.Kind)
}

func TestEnumDecoder(t *testing.T) {
	decode := enumDecoder(skillNames)

	skill, err := decode("8")
	require.NoError(t, err)
	assert.Equal(t, Launch, skill)
	assert.Equal(t, "Launch", skill.String())

	_, err = decode("7")
	assert.EqualError(t, err, "no such id")

	_, err = decode("x")
	assert.EqualError(t, err, "not a valid number")

	assert.Equal(t, "7", Skill(7).String())
}
