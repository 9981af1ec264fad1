// Package data holds the static lookup tables the action layer validates
// against: industries and their starting costs, corporation upgrades,
// research trees and employee positions. Tables ship as embedded YAML and
// are injected into the engine, never read through package globals.
package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// Industry is the static description of one industry type.
type Industry struct {
	Type              string             `yaml:"type"`
	StartingCost      float64            `yaml:"starting_cost"`
	RequiredMaterials map[string]float64 `yaml:"required_materials"`
	ProducedMaterials []string           `yaml:"produced_materials"`
	MakesProducts     bool               `yaml:"makes_products"`
	Research          *ResearchNode      `yaml:"research"`
}

// ResearchTreeTemplate returns a fresh per-division research tree for
// this industry, or nil if the industry has none.
func (i *Industry) ResearchTreeTemplate() *ResearchTree {
	if i.Research == nil {
		return nil
	}
	return NewResearchTree(i.Research).Clone()
}

// UnlockUpgrade is a one-time corporation-wide unlock with a flat price.
type UnlockUpgrade struct {
	Name string  `yaml:"name"`
	Cost float64 `yaml:"cost"`
}

// LeveledUpgrade is a repeatable corporation upgrade whose price grows
// geometrically with the current level.
type LeveledUpgrade struct {
	Name      string  `yaml:"name"`
	BaseCost  float64 `yaml:"base_cost"`
	PriceMult float64 `yaml:"price_mult"`
}

// IndustryUpgrade is a division-scoped purchase. PerEmployee upgrades
// (coffee) cost BaseCost per employee in the office; the rest (AdVert)
// price off the division's current upgrade level.
type IndustryUpgrade struct {
	Name        string  `yaml:"name"`
	BaseCost    float64 `yaml:"base_cost"`
	PriceMult   float64 `yaml:"price_mult"`
	PerEmployee bool    `yaml:"per_employee"`
}

// Well-known industry upgrade names.
const (
	UpgradeCoffee = "Coffee"
	UpgradeAdVert = "AdVert"
)

// Tables is the full set of static lookups.
type Tables struct {
	Cities           []string
	Industries       map[string]*Industry
	UnlockUpgrades   map[string]UnlockUpgrade
	LeveledUpgrades  map[string]LeveledUpgrade
	IndustryUpgrades map[string]IndustryUpgrade
}

type tablesFile struct {
	Cities           []string          `yaml:"cities"`
	Industries       []*Industry       `yaml:"industries"`
	UnlockUpgrades   []UnlockUpgrade   `yaml:"unlock_upgrades"`
	LeveledUpgrades  []LeveledUpgrade  `yaml:"leveled_upgrades"`
	IndustryUpgrades []IndustryUpgrade `yaml:"industry_upgrades"`
}

// Load parses the embedded tables.
func Load() (*Tables, error) {
	return Parse(tablesYAML)
}

// Parse decodes a tables document. Split out from Load so tests and
// modded data files can supply their own bytes.
func Parse(raw []byte) (*Tables, error) {
	var f tablesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing data tables: %w", err)
	}
	t := &Tables{
		Cities:           f.Cities,
		Industries:       make(map[string]*Industry, len(f.Industries)),
		UnlockUpgrades:   make(map[string]UnlockUpgrade, len(f.UnlockUpgrades)),
		LeveledUpgrades:  make(map[string]LeveledUpgrade, len(f.LeveledUpgrades)),
		IndustryUpgrades: make(map[string]IndustryUpgrade, len(f.IndustryUpgrades)),
	}
	for _, ind := range f.Industries {
		if ind.Type == "" {
			return nil, fmt.Errorf("industry with empty type in data tables")
		}
		t.Industries[ind.Type] = ind
	}
	for _, u := range f.UnlockUpgrades {
		t.UnlockUpgrades[u.Name] = u
	}
	for _, u := range f.LeveledUpgrades {
		t.LeveledUpgrades[u.Name] = u
	}
	for _, u := range f.IndustryUpgrades {
		t.IndustryUpgrades[u.Name] = u
	}
	if len(t.Cities) == 0 {
		return nil, fmt.Errorf("data tables define no cities")
	}
	return t, nil
}

// ValidCity reports whether city is a known location.
func (t *Tables) ValidCity(city string) bool {
	for _, c := range t.Cities {
		if c == city {
			return true
		}
	}
	return false
}

// Industry looks up an industry by type key.
func (t *Tables) Industry(typ string) (*Industry, bool) {
	ind, ok := t.Industries[typ]
	return ind, ok
}
