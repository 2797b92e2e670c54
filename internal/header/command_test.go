package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedheader/internal/parser"
)

func parseSingleCommand(t *testing.T, source string) HeaderCommand {
	t.Helper()
	contents, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	statement, ok := contents[0].(CommandStatement)
	require.True(t, ok, "expected a command, got %T", contents[0])
	return statement.Command
}

func singleCommandError(t *testing.T, source string) *parser.ParseError {
	t.Helper()
	_, err := Parse(source)
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	return errs[0]
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		source  string
		command HeaderCommand
	}{
		{"!!include base_header\n", IncludeCommand{Name: "base_header"}},
		{"!! include base_header   // shared setup\n", IncludeCommand{Name: "base_header"}},
		{"!!Exclude no_hints", ExcludeCommand{Name: "no_hints"}},
		{"!!add 0|100\n", AddCommand{Item: ItemSpiritLight{Amount: Literal[uint32](100)}}},
		{"!!ADD 6|\"Hi\"|Spell:4\n", AddCommand{Item: ItemMessage{Text: "Hi", Icon: &Icon{Kind: SpellIconKind, ID: 4}}}},
		{"!!remove 2|-8\n", RemoveCommand{Item: ItemSkill{Skill: Literal(Launch), Remove: true}}},
		{"!!set 3|4=5\n", SetCommand{Identifier: UberIdentifier{Group: 3, ID: 4}, Value: Literal("5")}},
		{"!!set 3|4=true\n", SetCommand{Identifier: UberIdentifier{Group: 3, ID: 4}, Value: Literal("true")}},
		{"!!set 3|4=$Param(start)\n", SetCommand{Identifier: UberIdentifier{Group: 3, ID: 4}, Value: Param[string]("start")}},
		{"!!parameter speed float:1.5\n", ParameterCommand{Name: "speed", Type: FloatParameter, Default: "1.5"}},
		{"!!parameter count int:-3\n", ParameterCommand{Name: "count", Type: IntParameter, Default: "-3"}},
		{"!!parameter hard bool:false // toggles hard mode\n", ParameterCommand{Name: "hard", Type: BoolParameter, Default: "false"}},
		{"!!parameter greeting string:\"hi there\"\n", ParameterCommand{Name: "greeting", Type: StringParameter, Default: "hi there"}},
		{"!!parameter name String:plain\n", ParameterCommand{Name: "name", Type: StringParameter, Default: "plain"}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.command, parseSingleCommand(t, tt.source))
		})
	}
}

func TestParseCommandFollowedByStatements(t *testing.T) {
	contents, err := Parse("!!include a // c\n#hide\n!!parameter p int:1\n0|1|0|5\n")
	require.NoError(t, err)
	require.Len(t, contents, 4)
	assert.Equal(t, CommandStatement{Command: IncludeCommand{Name: "a"}}, contents[0])
	assert.Equal(t, Annotation{Name: "hide"}, contents[1])
	assert.IsType(t, CommandStatement{}, contents[2])
	assert.IsType(t, VPickup{}, contents[3])
}

func TestUnknownCommand(t *testing.T) {
	perr := singleCommandError(t, "!!bogus thing\n")
	assert.Equal(t, parser.HeaderCommand, perr.Suggestion)
	assert.Equal(t, parser.Range{Start: 2, End: 7}, perr.Range)

	perr = singleCommandError(t, "!!\n")
	assert.Equal(t, parser.HeaderCommand, perr.Suggestion)
}

func TestCommandSyntaxErrorIsAbsolute(t *testing.T) {
	source := "#a\n!!include\n"
	perr := singleCommandError(t, source)
	assert.Equal(t, parser.Identifier, perr.Suggestion)
	// Offsets are relative to the whole document, not the command line.
	assert.GreaterOrEqual(t, perr.Range.Start, 5)
	assert.LessOrEqual(t, perr.Range.Start, 12)
}

func TestCommandItemErrors(t *testing.T) {
	perr := singleCommandError(t, "!!add 1|9\n")
	assert.Equal(t, parser.Resource, perr.Suggestion)
	assert.Equal(t, parser.Range{Start: 8, End: 9}, perr.Range)

	perr = singleCommandError(t, "!!remove 0|100 extra\n")
	assert.Equal(t, `unexpected "extra" after command`, perr.Message)
	assert.Equal(t, parser.Range{Start: 15, End: 20}, perr.Range)

	perr = singleCommandError(t, "!!add 6|\"open\n")
	assert.Equal(t, parser.UnterminatedString, perr.Kind)
}

func TestCommandSetErrors(t *testing.T) {
	perr := singleCommandError(t, "!!set 3|4\n")
	assert.Equal(t, "expected '='", perr.Message)
	assert.Equal(t, parser.UberConditionValue, perr.Suggestion)

	perr = singleCommandError(t, "!!set 3=4\n")
	assert.Equal(t, parser.UberGroup, perr.Suggestion)
}

func TestParameterErrors(t *testing.T) {
	perr := singleCommandError(t, "!!parameter x number:1\n")
	assert.Equal(t, parser.ParameterType, perr.Suggestion)
	assert.Equal(t, parser.InvalidValue, perr.Kind)
	assert.Equal(t, parser.Range{Start: 14, End: 20}, perr.Range)

	perr = singleCommandError(t, "!!parameter x flot:1\n")
	assert.Contains(t, perr.Message, `did you mean "float"?`)

	perr = singleCommandError(t, "!!parameter x int:abc\n")
	assert.Equal(t, parser.Integer, perr.Suggestion)
	assert.Equal(t, parser.Range{Start: 18, End: 21}, perr.Range)

	perr = singleCommandError(t, "!!parameter x bool:2\n")
	assert.Equal(t, parser.Boolean, perr.Suggestion)

	perr = singleCommandError(t, "!!parameter x int\n")
	assert.Equal(t, parser.ParameterType, perr.Suggestion)
}

func TestCommandErrorDoesNotStopParsing(t *testing.T) {
	_, err := Parse("!!bogus\n!!include\n0|1|0|5\n")
	errs := parseErrors(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, parser.HeaderCommand, errs[0].Suggestion)
	assert.Equal(t, parser.Identifier, errs[1].Suggestion)
}
