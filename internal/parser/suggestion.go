package parser

// Suggestion names the construct the grammar expected where it failed.
// Editors use it to offer completions; the reporter prints its label.
type Suggestion int

const (
	NoSuggestion Suggestion = iota
	UberGroup
	UberId
	UberTriggerValue
	Integer
	Float
	Boolean
	NumericBoolean
	Identifier
	IconKind
	ShardIcon
	SpellIcon
	OpherIcon
	LupoIcon
	GromIcon
	TuleyIcon
	SetupKind
	Annotation
	Expression
	InterpolationCommand
	UberConditionValue
	ItemKind
	Resource
	Skill
	Shard
	CommandKind
	ToggleCommandKind
	EquipSlot
	Spell
	Teleporter
	MessageFlag
	UberType
	WorldEvent
	BonusItem
	BonusUpgrade
	Zone
	SysMessageKind
	WheelCommandKind
	WheelItemPosition
	WheelBind
	ShopCommandKind
	HeaderCommand
	ParameterType
)

var suggestionLabels = [...]string{
	NoSuggestion:         "",
	UberGroup:            "uber group",
	UberId:               "uber id",
	UberTriggerValue:     "uber trigger value",
	Integer:              "integer",
	Float:                "float",
	Boolean:              "boolean",
	NumericBoolean:       "numeric boolean",
	Identifier:           "identifier",
	IconKind:             "icon kind",
	ShardIcon:            "shard icon",
	SpellIcon:            "spell icon",
	OpherIcon:            "opher icon",
	LupoIcon:             "lupo icon",
	GromIcon:             "grom icon",
	TuleyIcon:            "tuley icon",
	SetupKind:            "setup kind",
	Annotation:           "annotation",
	Expression:           "expression",
	InterpolationCommand: "interpolation command",
	UberConditionValue:   "uber condition value",
	ItemKind:             "item kind",
	Resource:             "resource",
	Skill:                "skill",
	Shard:                "shard",
	CommandKind:          "command kind",
	ToggleCommandKind:    "toggle command kind",
	EquipSlot:            "equip slot",
	Spell:                "spell",
	Teleporter:           "teleporter",
	MessageFlag:          "message flag",
	UberType:             "uber type",
	WorldEvent:           "world event",
	BonusItem:            "bonus item",
	BonusUpgrade:         "bonus upgrade",
	Zone:                 "zone",
	SysMessageKind:       "system message kind",
	WheelCommandKind:     "wheel command kind",
	WheelItemPosition:    "wheel item position",
	WheelBind:            "wheel bind",
	ShopCommandKind:      "shop command kind",
	HeaderCommand:        "header command",
	ParameterType:        "parameter type",
}

func (s Suggestion) String() string {
	if s < 0 || int(s) >= len(suggestionLabels) {
		return "unknown"
	}
	return suggestionLabels[s]
}
