package header

import (
	"fmt"

	"seedheader/internal/parser"
)

type IconKind int

const (
	ShardIconKind IconKind = iota
	SpellIconKind
	OpherIconKind
	LupoIconKind
	GromIconKind
	TuleyIconKind
	FileIconKind
)

var iconKinds = parser.KeywordTable[IconKind]{
	{Name: "Shard", Value: ShardIconKind},
	{Name: "Spell", Value: SpellIconKind},
	{Name: "Opher", Value: OpherIconKind},
	{Name: "Lupo", Value: LupoIconKind},
	{Name: "Grom", Value: GromIconKind},
	{Name: "Tuley", Value: TuleyIconKind},
	{Name: "File", Value: FileIconKind},
}

// iconSuggestions is the expectation after the colon, per numeric kind.
var iconSuggestions = map[IconKind]parser.Suggestion{
	ShardIconKind: parser.ShardIcon,
	SpellIconKind: parser.SpellIcon,
	OpherIconKind: parser.OpherIcon,
	LupoIconKind:  parser.LupoIcon,
	GromIconKind:  parser.GromIcon,
	TuleyIconKind: parser.TuleyIcon,
}

// Icon is either a numbered game icon or, for FileIconKind, a path.
type Icon struct {
	Kind IconKind
	ID   uint32
	Path string
}

func (i Icon) String() string {
	name := iconKinds[i.Kind].Name
	if i.Kind == FileIconKind {
		return fmt.Sprintf("%s:%q", name, i.Path)
	}
	return fmt.Sprintf("%s:%d", name, i.ID)
}

func parseIcon(p *parser.Parser) (Icon, error) {
	kind, err := parser.ParseIdent(p, iconKinds, parser.IconKind)
	if err != nil {
		return Icon{}, err
	}
	if _, err := p.EatOrSuggest(parser.COLON, parser.IconKind); err != nil {
		return Icon{}, err
	}

	if kind == FileIconKind {
		path, err := parser.ParseString(p, parser.IconKind)
		if err != nil {
			return Icon{}, err
		}
		return Icon{Kind: kind, Path: path}, nil
	}

	id, err := parser.ParseNumber(p, decodeUint32, iconSuggestions[kind])
	if err != nil {
		return Icon{}, err
	}
	return Icon{Kind: kind, ID: id}, nil
}
