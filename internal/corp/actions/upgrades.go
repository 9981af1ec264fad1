package actions

import (
	"math"

	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/data"
	"github.com/openmagnate/magnate/internal/corp/events"
)

// UnlockUpgrade buys a one-time corporation unlock at its flat price.
// Re-buying an already-unlocked upgrade succeeds without cost.
func (e *Engine) UnlockUpgrade(corp *core.Corporation, name string) (bool, error) {
	const op = "unlockUpgrade"

	up, ok := e.tables.UnlockUpgrades[name]
	if !ok {
		return false, core.WrapActionError(op, name, core.ErrUnknownUpgrade)
	}
	if corp.HasUnlocked(name) {
		return true, nil
	}
	if !corp.Spend(up.Cost) {
		return false, nil
	}

	corp.UnlockedUpgrades[name] = true
	e.logger.Debug().Str("upgrade", name).Float64("cost", up.Cost).Msg("Upgrade unlocked")
	e.publish(events.NewUpgradeEvent(events.TypeUpgradeUnlocked, corp.ID.String(), name, 0, up.Cost))
	return true, nil
}

// LevelUpgrade buys one level of a repeatable corporation upgrade at
// base cost times priceMult^currentLevel.
func (e *Engine) LevelUpgrade(corp *core.Corporation, name string) (bool, error) {
	const op = "levelUpgrade"

	up, ok := e.tables.LeveledUpgrades[name]
	if !ok {
		return false, core.WrapActionError(op, name, core.ErrUnknownUpgrade)
	}
	level := corp.UpgradeLevel(name)
	cost := up.BaseCost * math.Pow(up.PriceMult, float64(level))
	if !corp.Spend(cost) {
		return false, nil
	}

	corp.UpgradeLevels[name] = level + 1
	e.logger.Debug().Str("upgrade", name).Int("level", level+1).Float64("cost", cost).Msg("Upgrade leveled")
	e.publish(events.NewUpgradeEvent(events.TypeUpgradeLeveled, corp.ID.String(), name, level+1, cost))
	return true, nil
}

// IssueDividends sets what share of profits is paid out. The percent is
// validated against the configured maximum and stored at the internal
// x100 scale.
func (e *Engine) IssueDividends(corp *core.Corporation, percent float64) error {
	const op = "issueDividends"

	if math.IsNaN(percent) || percent < 0 || percent > e.econ.DividendMaxPercent {
		return core.WrapActionError(op, "", core.ErrInvalidPercent)
	}
	corp.DividendPercent = percent * 100
	e.publish(events.NewUpgradeEvent(events.TypeDividendsIssued, corp.ID.String(), "dividends", int(percent), 0))
	return nil
}

// BuyCoffee buys a round of coffee for an office, priced per employee.
// Unaffordable purchases are a silent no-op.
func (e *Engine) BuyCoffee(corp *core.Corporation, div *core.Division, office *core.Office) {
	up, ok := e.tables.IndustryUpgrades[data.UpgradeCoffee]
	if !ok {
		e.logger.Warn().Msg("Coffee upgrade missing from data tables")
		return
	}
	cost := up.BaseCost * float64(len(office.Employees))
	if !corp.Spend(cost) {
		return
	}

	div.UpgradeLevels[data.UpgradeCoffee]++
	for _, emp := range office.Employees {
		emp.Refresh(e.econ.CoffeeEnergyMult)
	}
	e.logger.Debug().
		Str("division", div.Name).
		Str("city", office.City).
		Float64("cost", cost).
		Msg("Coffee bought")
}

// HireAdVert buys one advertising campaign for a division, priced off
// the division's current AdVert level.
func (e *Engine) HireAdVert(corp *core.Corporation, div *core.Division) bool {
	up, ok := e.tables.IndustryUpgrades[data.UpgradeAdVert]
	if !ok {
		e.logger.Warn().Msg("AdVert upgrade missing from data tables")
		return false
	}
	level := div.UpgradeLevels[data.UpgradeAdVert]
	cost := up.BaseCost * math.Pow(up.PriceMult, float64(level))
	if !corp.Spend(cost) {
		return false
	}

	div.UpgradeLevels[data.UpgradeAdVert] = level + 1
	e.logger.Debug().
		Str("division", div.Name).
		Int("level", level+1).
		Float64("cost", cost).
		Msg("AdVert hired")
	return true
}
