package header

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedheader/internal/parser"
)

func parseErrors(t *testing.T, err error) parser.ParseErrorCollection {
	t.Helper()
	var errs parser.ParseErrorCollection
	require.True(t, errors.As(err, &errs), "expected a ParseErrorCollection, got %v", err)
	return errs
}

func TestParsePickup(t *testing.T) {
	contents, err := Parse("0|5000|0|100\n")
	require.NoError(t, err)
	require.Len(t, contents, 1)

	pickup, ok := contents[0].(VPickup)
	require.True(t, ok)
	assert.Equal(t, UberIdentifier{Group: 0, ID: 5000}, pickup.Trigger.Identifier)
	assert.Equal(t, Literal(""), pickup.Trigger.Value)
	assert.False(t, pickup.Trigger.HasCondition())
	assert.False(t, pickup.Ignore)
	assert.False(t, pickup.SkipValidation)
	assert.Equal(t, ItemSpiritLight{Amount: Literal[uint32](100)}, pickup.Item)
}

func TestParseIgnoredPickup(t *testing.T) {
	contents, err := Parse("!0|5000|0|100\n")
	require.NoError(t, err)
	require.Len(t, contents, 1)

	pickup := contents[0].(VPickup)
	assert.Equal(t, UberIdentifier{Group: 0, ID: 5000}, pickup.Trigger.Identifier)
	assert.True(t, pickup.Ignore)
}

func TestParseTriggerValue(t *testing.T) {
	contents, err := Parse("3|7=12|2|5\n5|9=$Param(count)|2|-5")
	require.NoError(t, err)
	require.Len(t, contents, 2)

	first := contents[0].(VPickup)
	assert.Equal(t, Literal("12"), first.Trigger.Value)
	assert.True(t, first.Trigger.HasCondition())
	assert.Equal(t, "3|7=12", first.Trigger.String())

	second := contents[1].(VPickup)
	assert.Equal(t, Param[string]("count"), second.Trigger.Value)
	assert.True(t, second.Trigger.HasCondition())
	assert.Equal(t, ItemSkill{Skill: Literal(DoubleJump), Remove: true}, second.Item)
}

func TestParseAnnotationThenPickup(t *testing.T) {
	contents, err := Parse("#mystery\n0|1|2|5\n")
	require.NoError(t, err)
	require.Len(t, contents, 2)

	assert.Equal(t, Annotation{Name: "mystery"}, contents[0])
	pickup, ok := contents[1].(VPickup)
	require.True(t, ok)
	assert.Equal(t, UberIdentifier{Group: 0, ID: 1}, pickup.Trigger.Identifier)
}

func TestParseRecoversAfterError(t *testing.T) {
	contents, err := Parse("0 5000|0|100\n0|1|0|100\n")
	assert.Nil(t, contents)

	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, parser.Range{Start: 1, End: 2}, errs[0].Range)
	assert.Equal(t, parser.MissingSeparator, errs[0].Kind)
	assert.Equal(t, parser.UberGroup, errs[0].Suggestion)
}

func TestParseReportsEveryBrokenLine(t *testing.T) {
	source := "0 5000|0|100\n0|1|0|100\n#\n3|4|99|1\n"
	_, err := Parse(source)

	errs := parseErrors(t, err)
	require.Len(t, errs, 3)

	// One error per broken line, in source order.
	li := parser.NewLineIndex(source)
	assert.Equal(t, 1, li.Position(errs[0].Range.Start).Line)
	assert.Equal(t, 3, li.Position(errs[1].Range.Start).Line)
	assert.Equal(t, 4, li.Position(errs[2].Range.Start).Line)

	assert.Equal(t, parser.Annotation, errs[1].Suggestion)
	assert.Equal(t, parser.ItemKind, errs[2].Suggestion)
	assert.Equal(t, parser.InvalidValue, errs[2].Kind)
}

func TestParseErrorOnLastLineWithoutNewline(t *testing.T) {
	_, err := Parse("0|1|0|100\n0|")
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, parser.UberId, errs[0].Suggestion)
}

func TestParseSetupTimer(t *testing.T) {
	sources := []string{
		"setup.Timer|1|2|3|4\n",
		"Setup Timer|1|2|3|4\n",
		"Setup|timer|1|2|3|4\n",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			contents, err := Parse(source)
			require.NoError(t, err)
			require.Len(t, contents, 1)
			assert.Equal(t, SetupStatement{Setup: SetupTimer{
				Switch:  UberIdentifier{Group: 1, ID: 2},
				Counter: UberIdentifier{Group: 3, ID: 4},
			}}, contents[0])
		})
	}
}

func TestParseSetupUnknownKind(t *testing.T) {
	_, err := Parse("Setup.Timr|1|2|3|4\n")
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, parser.SetupKind, errs[0].Suggestion)
	assert.Contains(t, errs[0].Message, `did you mean "Timer"?`)
}

func TestParseUnknownExpression(t *testing.T) {
	_, err := Parse("Bogus|1\n|\n")
	errs := parseErrors(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, parser.Expression, errs[0].Suggestion)
	assert.Equal(t, parser.InvalidValue, errs[0].Kind)
	assert.Equal(t, "expected expression", errs[1].Message)
	assert.Equal(t, parser.Expression, errs[1].Suggestion)
}

func TestParseUnterminatedIconPath(t *testing.T) {
	source := "0|1|6|\"Hello\"|File:\"icons/sword.png\n"
	_, err := Parse(source)
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, parser.UnterminatedString, errs[0].Kind)
	assert.Equal(t, parser.Range{Start: 19, End: 35}, errs[0].Range)
}

func TestParseDocumentation(t *testing.T) {
	source := "/// Shows the header\n//// Configures it\n// plain note\n#hide\n"
	contents, err := Parse(source)
	require.NoError(t, err)
	assert.Equal(t, []HeaderContent{
		OuterDocumentation{Text: "Shows the header"},
		InnerDocumentation{Text: "Configures it"},
		Annotation{Name: "hide"},
	}, contents)
}

func TestParseTrailingContent(t *testing.T) {
	contents, err := Parse("0|1|0|100   // reward\n\n\n#a // trailing")
	require.NoError(t, err)
	require.Len(t, contents, 2)

	_, err = Parse("0|1|0|100 0|2\n")
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "expected newline", errs[0].Message)
	assert.Equal(t, parser.MissingSeparator, errs[0].Kind)
}

func TestSkipValidationAppliesToNextStatement(t *testing.T) {
	source := "// skip-validate\n0|1|0|100\n0|2|0|100\n"
	contents, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.True(t, contents[0].(VPickup).SkipValidation)
	assert.False(t, contents[1].(VPickup).SkipValidation)
}

func TestSkipValidationResetAfterFailedStatement(t *testing.T) {
	source := "// skip-validate\n0 1|0|100\n0|2|0|100\n"
	_, err := Parse(source)
	require.Error(t, err)

	// Only the second pickup parses; the flag must not leak into it.
	source = "// skip-validate\n#a\n0|2|0|100\n"
	contents, err := Parse(source)
	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.False(t, contents[1].(VPickup).SkipValidation)
}

func TestParseEmptyInput(t *testing.T) {
	for _, source := range []string{"", "\n\n", "   \n// only a note\n"} {
		contents, err := Parse(source)
		assert.NoError(t, err)
		assert.Empty(t, contents)
	}
}

func TestParseResultsAreExclusive(t *testing.T) {
	sources := []string{
		"0|1|0|100\n",
		"0|1|0|abc\n",
		"!!include foo\n",
		"!!bogus\n",
		"\"x",
		"$",
	}
	for _, source := range sources {
		contents, err := Parse(source)
		if err != nil {
			assert.Nil(t, contents, source)
			assert.NotEmpty(t, parseErrors(t, err), source)
		} else {
			assert.NotNil(t, contents, source)
		}
	}
}
