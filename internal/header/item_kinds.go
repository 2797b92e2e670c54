package header

import (
	"cmp"
	"fmt"
	"slices"
)

type Resource uint32

const (
	HealthFragment Resource = 0
	EnergyFragment Resource = 1
	GorlekOre      Resource = 2
	Keystone       Resource = 3
	ShardSlot      Resource = 4
)

var resourceNames = map[Resource]string{
	HealthFragment: "HealthFragment",
	EnergyFragment: "EnergyFragment",
	GorlekOre:      "GorlekOre",
	Keystone:       "Keystone",
	ShardSlot:      "ShardSlot",
}

func (r Resource) String() string { return enumName(resourceNames, r) }

type Skill uint32

const (
	Bash            Skill = 0
	DoubleJump      Skill = 5
	Launch          Skill = 8
	Glide           Skill = 14
	WaterBreath     Skill = 23
	Grenade         Skill = 51
	Grapple         Skill = 57
	Flash           Skill = 62
	Spear           Skill = 74
	Regenerate      Skill = 77
	Bow             Skill = 97
	Hammer          Skill = 98
	Sword           Skill = 100
	Burrow          Skill = 101
	Dash            Skill = 102
	WaterDash       Skill = 104
	Shuriken        Skill = 106
	Seir            Skill = 108
	Blaze           Skill = 115
	Sentry          Skill = 116
	Flap            Skill = 118
	AncestralLight1 Skill = 120
	AncestralLight2 Skill = 121
)

var skillNames = map[Skill]string{
	Bash:            "Bash",
	DoubleJump:      "DoubleJump",
	Launch:          "Launch",
	Glide:           "Glide",
	WaterBreath:     "WaterBreath",
	Grenade:         "Grenade",
	Grapple:         "Grapple",
	Flash:           "Flash",
	Spear:           "Spear",
	Regenerate:      "Regenerate",
	Bow:             "Bow",
	Hammer:          "Hammer",
	Sword:           "Sword",
	Burrow:          "Burrow",
	Dash:            "Dash",
	WaterDash:       "WaterDash",
	Shuriken:        "Shuriken",
	Seir:            "Seir",
	Blaze:           "Blaze",
	Sentry:          "Sentry",
	Flap:            "Flap",
	AncestralLight1: "AncestralLight1",
	AncestralLight2: "AncestralLight2",
}

func (s Skill) String() string { return enumName(skillNames, s) }

type Shard uint32

const (
	Overcharge         Shard = 1
	TripleJump         Shard = 2
	Wingclip           Shard = 3
	Bounty             Shard = 4
	Swap               Shard = 5
	Magnet             Shard = 8
	Splinter           Shard = 9
	Reckless           Shard = 13
	Quickshot          Shard = 14
	Resilience         Shard = 18
	SpiritLightHarvest Shard = 19
	Vitality           Shard = 22
	LifeHarvest        Shard = 23
	EnergyHarvest      Shard = 25
	Energy             Shard = 26
	LifePact           Shard = 27
	LastStand          Shard = 28
	Sense              Shard = 30
	UltraBash          Shard = 32
	UltraGrapple       Shard = 33
	Overflow           Shard = 34
	Thorn              Shard = 35
	Catalyst           Shard = 36
	Turmoil            Shard = 38
	Sticky             Shard = 39
	Finesse            Shard = 40
	SpiritSurge        Shard = 41
	Lifeforce          Shard = 43
	Deflector          Shard = 44
	Fracture           Shard = 46
	Arcing             Shard = 47
)

var shardNames = map[Shard]string{
	Overcharge:         "Overcharge",
	TripleJump:         "TripleJump",
	Wingclip:           "Wingclip",
	Bounty:             "Bounty",
	Swap:               "Swap",
	Magnet:             "Magnet",
	Splinter:           "Splinter",
	Reckless:           "Reckless",
	Quickshot:          "Quickshot",
	Resilience:         "Resilience",
	SpiritLightHarvest: "SpiritLightHarvest",
	Vitality:           "Vitality",
	LifeHarvest:        "LifeHarvest",
	EnergyHarvest:      "EnergyHarvest",
	Energy:             "Energy",
	LifePact:           "LifePact",
	LastStand:          "LastStand",
	Sense:              "Sense",
	UltraBash:          "UltraBash",
	UltraGrapple:       "UltraGrapple",
	Overflow:           "Overflow",
	Thorn:              "Thorn",
	Catalyst:           "Catalyst",
	Turmoil:            "Turmoil",
	Sticky:             "Sticky",
	Finesse:            "Finesse",
	SpiritSurge:        "SpiritSurge",
	Lifeforce:          "Lifeforce",
	Deflector:          "Deflector",
	Fracture:           "Fracture",
	Arcing:             "Arcing",
}

func (s Shard) String() string { return enumName(shardNames, s) }

type Teleporter uint32

const (
	BurrowsTeleporter    Teleporter = 0
	DenTeleporter        Teleporter = 1
	EastPoolsTeleporter  Teleporter = 2
	WellspringTeleporter Teleporter = 3
	ReachTeleporter      Teleporter = 4
	HollowTeleporter     Teleporter = 5
	DepthsTeleporter     Teleporter = 6
	WestWoodsTeleporter  Teleporter = 7
	EastWoodsTeleporter  Teleporter = 8
	WestWastesTeleporter Teleporter = 9
	EastWastesTeleporter Teleporter = 10
	OuterRuinsTeleporter Teleporter = 11
	InnerRuinsTeleporter Teleporter = 12
	WillowTeleporter     Teleporter = 13
	WestPoolsTeleporter  Teleporter = 14
	ShriekTeleporter     Teleporter = 15
	MarshTeleporter      Teleporter = 16
	GladesTeleporter     Teleporter = 17
)

var teleporterNames = map[Teleporter]string{
	BurrowsTeleporter:    "Burrows",
	DenTeleporter:        "Den",
	EastPoolsTeleporter:  "EastPools",
	WellspringTeleporter: "Wellspring",
	ReachTeleporter:      "Reach",
	HollowTeleporter:     "Hollow",
	DepthsTeleporter:     "Depths",
	WestWoodsTeleporter:  "WestWoods",
	EastWoodsTeleporter:  "EastWoods",
	WestWastesTeleporter: "WestWastes",
	EastWastesTeleporter: "EastWastes",
	OuterRuinsTeleporter: "OuterRuins",
	InnerRuinsTeleporter: "InnerRuins",
	WillowTeleporter:     "Willow",
	WestPoolsTeleporter:  "WestPools",
	ShriekTeleporter:     "Shriek",
	MarshTeleporter:      "Marsh",
	GladesTeleporter:     "Glades",
}

func (t Teleporter) String() string { return enumName(teleporterNames, t) }

// Command is a game command an item can trigger. Only the argument-free
// commands are addressable from a header item.
type Command uint32

const (
	Autosave Command = 0
)

var commandNames = map[Command]string{
	Autosave: "Autosave",
}

func (c Command) String() string { return enumName(commandNames, c) }

type BonusItem uint32

const (
	Relic              BonusItem = 20
	HealthRegeneration BonusItem = 30
	EnergyRegeneration BonusItem = 31
	ExtraDoubleJump    BonusItem = 35
	ExtraAirDash       BonusItem = 36
)

var bonusItemNames = map[BonusItem]string{
	Relic:              "Relic",
	HealthRegeneration: "HealthRegeneration",
	EnergyRegeneration: "EnergyRegeneration",
	ExtraDoubleJump:    "ExtraDoubleJump",
	ExtraAirDash:       "ExtraAirDash",
}

func (b BonusItem) String() string { return enumName(bonusItemNames, b) }

type BonusUpgrade uint32

const (
	RapidHammer            BonusUpgrade = 0
	RapidSword             BonusUpgrade = 1
	BlazeEfficiency        BonusUpgrade = 2
	SpearEfficiency        BonusUpgrade = 3
	ShurikenEfficiency     BonusUpgrade = 4
	SentryEfficiency       BonusUpgrade = 5
	BowEfficiency          BonusUpgrade = 6
	RegenerationEfficiency BonusUpgrade = 7
	FlashEfficiency        BonusUpgrade = 8
	GrenadeEfficiency      BonusUpgrade = 9
)

var bonusUpgradeNames = map[BonusUpgrade]string{
	RapidHammer:            "RapidHammer",
	RapidSword:             "RapidSword",
	BlazeEfficiency:        "BlazeEfficiency",
	SpearEfficiency:        "SpearEfficiency",
	ShurikenEfficiency:     "ShurikenEfficiency",
	SentryEfficiency:       "SentryEfficiency",
	BowEfficiency:          "BowEfficiency",
	RegenerationEfficiency: "RegenerationEfficiency",
	FlashEfficiency:        "FlashEfficiency",
	GrenadeEfficiency:      "GrenadeEfficiency",
}

func (b BonusUpgrade) String() string { return enumName(bonusUpgradeNames, b) }

func enumName[T ~uint32](names map[T]string, value T) string {
	if name, ok := names[value]; ok {
		return name
	}
	return fmt.Sprintf("%d", uint32(value))
}

// enumEntries lists an enumeration ordered by id.
func enumEntries[T ~uint32](names map[T]string) []T {
	ids := make([]T, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b T) int { return cmp.Compare(a, b) })
	return ids
}
