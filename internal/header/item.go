package header

import (
	"errors"
	"fmt"
	"strconv"

	"seedheader/internal/parser"
)

// VItem is the item a pickup grants or removes.
type VItem interface {
	item()
}

type ItemSpiritLight struct {
	Amount V[uint32]
	Remove bool
}

type ItemResource struct {
	Resource V[Resource]
}

type ItemSkill struct {
	Skill  V[Skill]
	Remove bool
}

type ItemShard struct {
	Shard  V[Shard]
	Remove bool
}

type ItemTeleporter struct {
	Teleporter V[Teleporter]
	Remove     bool
}

// ItemCommand runs a game command when granted.
type ItemCommand struct {
	Command V[Command]
}

type ItemMessage struct {
	Text string
	Icon *Icon
}

// ItemUberState sets an uber state when granted.
type ItemUberState struct {
	Identifier UberIdentifier
	Type       UberStateType
	Value      V[string]
}

type ItemWater struct {
	Remove bool
}

type ItemBonusItem struct {
	BonusItem V[BonusItem]
	Remove    bool
}

type ItemBonusUpgrade struct {
	BonusUpgrade V[BonusUpgrade]
	Remove       bool
}

func (ItemSpiritLight) item()  {}
func (ItemResource) item()     {}
func (ItemSkill) item()        {}
func (ItemShard) item()        {}
func (ItemTeleporter) item()   {}
func (ItemCommand) item()      {}
func (ItemMessage) item()      {}
func (ItemUberState) item()    {}
func (ItemWater) item()        {}
func (ItemBonusItem) item()    {}
func (ItemBonusUpgrade) item() {}

type itemKind uint32

const (
	spiritLightKind  itemKind = 0
	resourceKind     itemKind = 1
	skillKind        itemKind = 2
	shardKind        itemKind = 3
	commandKind      itemKind = 4
	teleporterKind   itemKind = 5
	messageKind      itemKind = 6
	uberStateKind    itemKind = 8
	waterKind        itemKind = 9
	bonusItemKind    itemKind = 10
	bonusUpgradeKind itemKind = 11
)

var itemKindNames = map[itemKind]string{
	spiritLightKind:  "SpiritLight",
	resourceKind:     "Resource",
	skillKind:        "Skill",
	shardKind:        "Shard",
	commandKind:      "Command",
	teleporterKind:   "Teleporter",
	messageKind:      "Message",
	uberStateKind:    "UberState",
	waterKind:        "Water",
	bonusItemKind:    "BonusItem",
	bonusUpgradeKind: "BonusUpgrade",
}

type UberStateType int

const (
	BoolType UberStateType = iota
	ByteType
	IntType
	FloatType
)

var uberStateTypes = parser.KeywordTable[UberStateType]{
	{Name: "bool", Value: BoolType},
	{Name: "byte", Value: ByteType},
	{Name: "int", Value: IntType},
	{Name: "float", Value: FloatType},
}

func (t UberStateType) String() string {
	return uberStateTypes[t].Name
}

func (t UberStateType) suggestion() parser.Suggestion {
	switch t {
	case BoolType:
		return parser.Boolean
	case FloatType:
		return parser.Float
	default:
		return parser.Integer
	}
}

// validate checks a literal against the type and returns it unchanged.
func (t UberStateType) validate(text string) (string, error) {
	var err error
	switch t {
	case BoolType:
		_, err = strconv.ParseBool(text)
	case ByteType:
		_, err = strconv.ParseUint(text, 10, 8)
	case IntType:
		_, err = decodeInt32(text)
	case FloatType:
		_, err = strconv.ParseFloat(text, 32)
	}
	if err != nil {
		return "", fmt.Errorf("not a valid %s", t)
	}
	return text, nil
}

// ParseItem parses one item specification. It leaves the cursor on the
// first token after the item.
func ParseItem(p *parser.Parser) (VItem, error) {
	kind, err := parser.ParseNumber(p, enumDecoder(itemKindNames), parser.ItemKind)
	if err != nil {
		return nil, err
	}
	if _, err := p.EatOrSuggest(parser.SEPARATOR, parser.ItemKind); err != nil {
		return nil, err
	}

	var item VItem
	switch kind {
	case spiritLightKind:
		amount, remove, perr := parseVRemovableNumber(p, decodeUint32, parser.Integer)
		item, err = ItemSpiritLight{Amount: amount, Remove: remove}, perr
	case resourceKind:
		resource, perr := parseVNumber(p, enumDecoder(resourceNames), parser.Resource)
		item, err = ItemResource{Resource: resource}, perr
	case skillKind:
		skill, remove, perr := parseVRemovableNumber(p, enumDecoder(skillNames), parser.Skill)
		item, err = ItemSkill{Skill: skill, Remove: remove}, perr
	case shardKind:
		shard, remove, perr := parseVRemovableNumber(p, enumDecoder(shardNames), parser.Shard)
		item, err = ItemShard{Shard: shard, Remove: remove}, perr
	case teleporterKind:
		teleporter, remove, perr := parseVRemovableNumber(p, enumDecoder(teleporterNames), parser.Teleporter)
		item, err = ItemTeleporter{Teleporter: teleporter, Remove: remove}, perr
	case commandKind:
		command, perr := parseVNumber(p, enumDecoder(commandNames), parser.CommandKind)
		item, err = ItemCommand{Command: command}, perr
	case messageKind:
		item, err = parseMessage(p)
	case uberStateKind:
		item, err = parseUberStateItem(p)
	case waterKind:
		_, remove, perr := parseRemovableNumber(p, decodeWater, parser.Integer)
		item, err = ItemWater{Remove: remove}, perr
	case bonusItemKind:
		bonus, remove, perr := parseVRemovableNumber(p, enumDecoder(bonusItemNames), parser.BonusItem)
		item, err = ItemBonusItem{BonusItem: bonus, Remove: remove}, perr
	case bonusUpgradeKind:
		upgrade, remove, perr := parseVRemovableNumber(p, enumDecoder(bonusUpgradeNames), parser.BonusUpgrade)
		item, err = ItemBonusUpgrade{BonusUpgrade: upgrade, Remove: remove}, perr
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func decodeWater(text string) (struct{}, error) {
	if text != "0" {
		return struct{}{}, errors.New("water only takes 0")
	}
	return struct{}{}, nil
}

func parseMessage(p *parser.Parser) (VItem, error) {
	text, err := parser.ParseString(p, parser.ItemKind)
	if err != nil {
		return nil, err
	}
	message := ItemMessage{Text: text}
	if p.CurrentToken().Kind == parser.SEPARATOR {
		p.NextToken()
		icon, err := parseIcon(p)
		if err != nil {
			return nil, err
		}
		message.Icon = &icon
	}
	return message, nil
}

func parseUberStateItem(p *parser.Parser) (VItem, error) {
	identifier, err := parseUberIdentifier(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.EatOrSuggest(parser.SEPARATOR, parser.UberId); err != nil {
		return nil, err
	}
	uberType, err := parser.ParseIdent(p, uberStateTypes, parser.UberType)
	if err != nil {
		return nil, err
	}
	if _, err := p.EatOrSuggest(parser.SEPARATOR, parser.UberType); err != nil {
		return nil, err
	}

	var value V[string]
	switch {
	case uberType == BoolType && p.CurrentToken().Kind == parser.IDENTIFIER:
		value, err = parseVIdent(p, uberType.validate, parser.Boolean)
	case uberType == FloatType:
		value, err = parseVFloat(p, uberType.validate)
	default:
		value, err = parseVNumber(p, uberType.validate, uberType.suggestion())
	}
	if err != nil {
		return nil, err
	}
	return ItemUberState{Identifier: identifier, Type: uberType, Value: value}, nil
}

// parseVFloat joins `1.5`, which lexes as NUMBER DOT NUMBER, back into one
// literal. The parts must be adjacent.
func parseVFloat(p *parser.Parser, validate func(string) (string, error)) (V[string], error) {
	tok := p.CurrentToken()
	if tok.Kind != parser.NUMBER {
		return parseV[string](p, parser.Float)
	}
	p.NextToken()

	literal := parser.Token{Kind: parser.NUMBER, Range: tok.Range}
	if dot := p.CurrentToken(); dot.Kind == parser.DOT && dot.Range.Start == literal.Range.End {
		p.NextToken()
		literal.Range.End = dot.Range.End
		frac := p.CurrentToken()
		if frac.Kind != parser.NUMBER || frac.Range.Start != dot.Range.End {
			return V[string]{}, p.Invalid(literal, parser.Float, errors.New("missing fraction"))
		}
		p.NextToken()
		literal.Range.End = frac.Range.End
	}

	value, err := validate(p.ReadToken(literal))
	if err != nil {
		return V[string]{}, p.Invalid(literal, parser.Float, err)
	}
	return Literal(value), nil
}
