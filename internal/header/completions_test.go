package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedheader/internal/parser"
)

func TestCompletionsForEnumerations(t *testing.T) {
	completions := Completions(parser.ItemKind)
	require.Len(t, completions, len(itemKindNames))
	assert.Equal(t, Completion{Label: "0", Detail: "SpiritLight"}, completions[0])
	assert.Equal(t, Completion{Label: "11", Detail: "BonusUpgrade"}, completions[len(completions)-1])

	assert.Equal(t, []Completion{{Label: "0", Detail: "Autosave"}}, Completions(parser.CommandKind))

	skills := Completions(parser.Skill)
	assert.Contains(t, skills, Completion{Label: "8", Detail: "Launch"})
}

func TestCompletionsForKeywords(t *testing.T) {
	labels := func(completions []Completion) []string {
		out := make([]string, len(completions))
		for i, c := range completions {
			out[i] = c.Label
		}
		return out
	}

	assert.Equal(t, []string{"Timer"}, labels(Completions(parser.SetupKind)))
	assert.Equal(t, []string{"bool", "int", "float", "string"}, labels(Completions(parser.ParameterType)))
	assert.Equal(t, headerCommandNames, labels(Completions(parser.HeaderCommand)))
	assert.Contains(t, labels(Completions(parser.IconKind)), "File")
}

func TestCompletionsForFreeForm(t *testing.T) {
	assert.Nil(t, Completions(parser.UberGroup))
	assert.Nil(t, Completions(parser.Annotation))
	assert.Nil(t, Completions(parser.NoSuggestion))
}
