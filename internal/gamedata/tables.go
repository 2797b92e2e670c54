// Package gamedata holds the static world tables used when generating a
// seed: spawn locations, relic zones, keystone doors and shop prices.
package gamedata

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"seedheader/internal/header"
)

//go:embed tables.yaml
var tablesYAML []byte

type Tables struct {
	Spawns        Spawns         `yaml:"spawns"`
	RelicZones    []string       `yaml:"relic_zones"`
	KeystoneDoors []KeystoneDoor `yaml:"keystone_doors"`
	ShopPrices    []ShopSlot     `yaml:"shop_prices"`
	Generator     Generator      `yaml:"generator"`
}

// Spawns lists the allowed random spawn anchors per difficulty.
type Spawns struct {
	Default string   `yaml:"default"`
	Moki    []string `yaml:"moki"`
	Gorlek  []string `yaml:"gorlek"`
}

type KeystoneDoor struct {
	Name      string `yaml:"name"`
	Keystones int    `yaml:"keystones"`
}

// ShopSlot pairs a shop location with the uber state holding its price.
type ShopSlot struct {
	Name     string                `yaml:"name"`
	Location header.UberIdentifier `yaml:"location"`
	Price    header.UberIdentifier `yaml:"price"`
}

type Generator struct {
	// ReserveSlots is how many slots stay free after random placements for
	// the next iteration.
	ReserveSlots int `yaml:"reserve_slots"`
	// Retries bounds the attempts at generating one seed.
	Retries int `yaml:"retries"`
	// RandomProgression is the chance of picking a progression item for a
	// random placement.
	RandomProgression float64 `yaml:"random_progression"`
}

var tables = mustDecode(tablesYAML)

// Get returns the embedded tables. Callers must not modify them.
func Get() *Tables {
	return tables
}

func mustDecode(data []byte) *Tables {
	t, err := Decode(data)
	if err != nil {
		panic(fmt.Sprintf("gamedata: %v", err))
	}
	return t
}

// Decode parses and checks a tables document.
func Decode(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) validate() error {
	if t.Spawns.Default == "" {
		return fmt.Errorf("no default spawn")
	}
	for _, list := range [][]string{t.Spawns.Moki, t.Spawns.Gorlek} {
		if !slices.Contains(list, t.Spawns.Default) {
			return fmt.Errorf("default spawn %q missing from a spawn list", t.Spawns.Default)
		}
	}

	doors := make(map[string]bool, len(t.KeystoneDoors))
	for _, door := range t.KeystoneDoors {
		if doors[door.Name] {
			return fmt.Errorf("duplicate keystone door %q", door.Name)
		}
		if door.Keystones <= 0 {
			return fmt.Errorf("keystone door %q needs a positive cost", door.Name)
		}
		doors[door.Name] = true
	}

	locations := make(map[header.UberIdentifier]bool, len(t.ShopPrices))
	for _, slot := range t.ShopPrices {
		if locations[slot.Location] {
			return fmt.Errorf("duplicate shop location %s", slot.Location)
		}
		locations[slot.Location] = true
	}
	return nil
}

// SpawnsFor returns the spawn list of a difficulty ("moki" or "gorlek").
func (t *Tables) SpawnsFor(difficulty string) ([]string, bool) {
	switch difficulty {
	case "moki":
		return t.Spawns.Moki, true
	case "gorlek":
		return t.Spawns.Gorlek, true
	}
	return nil, false
}

// KeystoneCost returns the number of keystones a door takes.
func (t *Tables) KeystoneCost(door string) (int, bool) {
	for _, d := range t.KeystoneDoors {
		if d.Name == door {
			return d.Keystones, true
		}
	}
	return 0, false
}

// PriceState returns the uber state that holds the price of a shop
// location.
func (t *Tables) PriceState(location header.UberIdentifier) (ShopSlot, bool) {
	for _, slot := range t.ShopPrices {
		if slot.Location == location {
			return slot, true
		}
	}
	return ShopSlot{}, false
}

func (t *Tables) IsRelicZone(zone string) bool {
	return slices.Contains(t.RelicZones, zone)
}
