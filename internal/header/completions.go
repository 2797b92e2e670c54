package header

import (
	"fmt"

	"seedheader/internal/parser"
)

// Completion is one candidate an editor can insert where a Suggestion was
// raised. Detail names numeric ids.
type Completion struct {
	Label  string
	Detail string
}

var headerCommandNames = []string{"include", "exclude", "add", "remove", "set", "parameter"}

// Completions lists the candidates for a suggestion, or nil when the
// expected value is free-form.
func Completions(s parser.Suggestion) []Completion {
	switch s {
	case parser.ItemKind:
		return enumCompletions(itemKindNames)
	case parser.Resource:
		return enumCompletions(resourceNames)
	case parser.Skill:
		return enumCompletions(skillNames)
	case parser.Shard:
		return enumCompletions(shardNames)
	case parser.Teleporter:
		return enumCompletions(teleporterNames)
	case parser.CommandKind:
		return enumCompletions(commandNames)
	case parser.BonusItem:
		return enumCompletions(bonusItemNames)
	case parser.BonusUpgrade:
		return enumCompletions(bonusUpgradeNames)
	case parser.IconKind:
		return keywordCompletions(iconKinds)
	case parser.SetupKind:
		return keywordCompletions(setupKinds)
	case parser.UberType:
		return keywordCompletions(uberStateTypes)
	case parser.ParameterType:
		return keywordCompletions(parameterTypes)
	case parser.InterpolationCommand:
		return keywordCompletions(interpolationCommands)
	case parser.Expression:
		return keywordCompletions(expressionIdentKinds)
	case parser.HeaderCommand:
		return labelCompletions(headerCommandNames)
	case parser.Boolean:
		return labelCompletions([]string{"true", "false"})
	case parser.NumericBoolean:
		return labelCompletions([]string{"0", "1"})
	}
	return nil
}

func enumCompletions[T ~uint32](names map[T]string) []Completion {
	ids := enumEntries(names)
	completions := make([]Completion, 0, len(ids))
	for _, id := range ids {
		completions = append(completions, Completion{
			Label:  fmt.Sprintf("%d", uint32(id)),
			Detail: names[id],
		})
	}
	return completions
}

func keywordCompletions[T any](table parser.KeywordTable[T]) []Completion {
	return labelCompletions(table.Names())
}

func labelCompletions(labels []string) []Completion {
	completions := make([]Completion, 0, len(labels))
	for _, label := range labels {
		completions = append(completions, Completion{Label: label})
	}
	return completions
}
