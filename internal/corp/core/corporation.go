// Package core holds the mutable economy graph: a Corporation owning
// Divisions, which own per-city Offices and Warehouses, Materials inside
// warehouses and Products inside divisions. The graph is only ever
// mutated by the action layer; the tick simulation reads and advances
// derived quantities on its own schedule. Nothing here locks — callers
// serialize access per corporation.
package core

import "github.com/google/uuid"

// Corporation is the aggregate root of one player's economy.
type Corporation struct {
	ID   uuid.UUID
	Name string

	// Funds is the spendable currency. Every purchase re-validates
	// affordability immediately before the debit; Spend is the only
	// mutation path an action should use.
	Funds float64

	// DividendPercent is stored at the internal x100 scale, so a player
	// input of 25 (%) is held as 2500.
	DividendPercent float64

	Divisions        []*Division
	UnlockedUpgrades map[string]bool
	UpgradeLevels    map[string]int
}

// NewCorporation founds a corporation with seed funds.
func NewCorporation(name string, funds float64) *Corporation {
	return &Corporation{
		ID:               uuid.New(),
		Name:             name,
		Funds:            funds,
		UnlockedUpgrades: make(map[string]bool),
		UpgradeLevels:    make(map[string]int),
	}
}

// Division returns the division with the given name.
func (c *Corporation) Division(name string) (*Division, bool) {
	for _, d := range c.Divisions {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// CanAfford reports whether funds cover cost.
func (c *Corporation) CanAfford(cost float64) bool {
	return c.Funds >= cost
}

// Spend debits cost if affordable, in one check-then-act step. Returns
// false and leaves funds untouched otherwise.
func (c *Corporation) Spend(cost float64) bool {
	if c.Funds < cost {
		return false
	}
	c.Funds -= cost
	return true
}

// HasUnlocked reports whether a one-time upgrade has been purchased.
func (c *Corporation) HasUnlocked(upgrade string) bool {
	return c.UnlockedUpgrades[upgrade]
}

// UpgradeLevel returns the current level of a leveled upgrade (0 when
// never purchased).
func (c *Corporation) UpgradeLevel(upgrade string) int {
	return c.UpgradeLevels[upgrade]
}
