package actions

import (
	"math"
	"sort"

	"github.com/openmagnate/magnate/internal/common"
	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/events"
)

// NewDivision founds a division of the given industry type. The name
// must be unique within the corporation and non-empty, the industry must
// exist in the tables, and the corporation must afford the industry's
// starting cost.
func (e *Engine) NewDivision(corp *core.Corporation, industryType, name string) error {
	const op = "newDivision"

	if _, exists := corp.Division(name); exists {
		return core.WrapActionError(op, name, core.ErrDuplicateName)
	}
	ind, ok := e.tables.Industry(industryType)
	if !ok {
		return core.WrapActionError(op, industryType, core.ErrUnknownIndustry)
	}
	if !corp.CanAfford(ind.StartingCost) {
		return core.WrapActionError(op, name, core.ErrInsufficientFunds)
	}
	if name == "" {
		return core.WrapActionError(op, industryType, core.ErrEmptyName)
	}

	corp.Spend(ind.StartingCost)
	div := core.NewDivision(name, industryType, ind.ResearchTreeTemplate())
	corp.Divisions = append(corp.Divisions, div)

	e.logger.Debug().
		Str("division", name).
		Str("industry", industryType).
		Float64("cost", ind.StartingCost).
		Msg("Division created")
	e.publish(events.NewDivisionCreatedEvent(corp.ID.String(), name, industryType, ind.StartingCost))
	return nil
}

// NewCity opens an office in a city where the division has none. Returns
// false without error when funds fall short.
func (e *Engine) NewCity(corp *core.Corporation, div *core.Division, city string) (bool, error) {
	const op = "newCity"

	if !e.tables.ValidCity(city) {
		return false, core.WrapActionError(op, city, core.ErrUnknownCity)
	}
	if _, exists := div.Offices[city]; exists {
		return false, core.WrapActionError(op, city, core.ErrFacilityExists)
	}
	if !corp.Spend(e.econ.OfficeInitialCost) {
		return false, nil
	}

	div.Offices[city] = core.NewOffice(city, e.econ.OfficeInitialSize)
	e.logger.Debug().
		Str("division", div.Name).
		Str("city", city).
		Msg("Office opened")
	e.publish(events.NewFacilityEvent(events.TypeOfficeOpened, corp.ID.String(), div.Name, city, e.econ.OfficeInitialCost))
	return true, nil
}

// UpgradeOfficeSize grows an office by the given number of seats. The
// cost sums a geometric series across each base-size increment being
// purchased, starting from the office's current size.
func (e *Engine) UpgradeOfficeSize(corp *core.Corporation, div *core.Division, office *core.Office, by int) bool {
	if by <= 0 {
		return false
	}

	base := e.econ.OfficeInitialSize
	initialPriceMult := int(math.Round(float64(office.Size) / float64(base)))
	increments := int(math.Ceil(float64(by) / float64(base)))
	cost := e.econ.OfficeInitialCost * common.GeometricSum(e.econ.OfficeGrowthRatio, initialPriceMult, increments)

	if !corp.Spend(cost) {
		return false
	}
	office.Size += by

	e.logger.Debug().
		Str("division", div.Name).
		Str("city", office.City).
		Int("size", office.Size).
		Float64("cost", cost).
		Msg("Office expanded")
	e.publish(events.NewFacilityEvent(events.TypeOfficeExpanded, corp.ID.String(), div.Name, office.City, cost))
	return true
}

// PurchaseWarehouse buys a warehouse for a city that has none, stocked
// with zeroed entries for every material the industry touches.
func (e *Engine) PurchaseWarehouse(corp *core.Corporation, div *core.Division, city string) bool {
	if !e.tables.ValidCity(city) {
		return false
	}
	if _, exists := div.Warehouses[city]; exists {
		return false
	}
	if !corp.Spend(e.econ.WarehouseInitialCost) {
		return false
	}

	div.Warehouses[city] = core.NewWarehouse(city, e.econ.WarehouseInitialSize, e.industryMaterials(div.Type))
	e.logger.Debug().
		Str("division", div.Name).
		Str("city", city).
		Msg("Warehouse purchased")
	e.publish(events.NewFacilityEvent(events.TypeWarehousePurchased, corp.ID.String(), div.Name, city, e.econ.WarehouseInitialCost))
	return true
}

// UpgradeWarehouse raises a warehouse one level and resizes it. The cost
// grows geometrically with the level being bought.
func (e *Engine) UpgradeWarehouse(corp *core.Corporation, div *core.Division, wh *core.Warehouse) bool {
	cost := e.econ.WarehouseUpgradeBaseCost * math.Pow(e.econ.WarehouseGrowthRatio, float64(wh.Level+1))
	if !corp.Spend(cost) {
		return false
	}

	wh.Level++
	wh.UpdateSize(e.econ.WarehouseInitialSize)

	e.logger.Debug().
		Str("division", div.Name).
		Str("city", wh.City).
		Int("level", wh.Level).
		Float64("cost", cost).
		Msg("Warehouse upgraded")
	e.publish(events.NewFacilityEvent(events.TypeWarehouseUpgraded, corp.ID.String(), div.Name, wh.City, cost))
	return true
}

// industryMaterials lists every material an industry consumes or
// produces, in stable order.
func (e *Engine) industryMaterials(industryType string) []string {
	ind, ok := e.tables.Industry(industryType)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, name := range ind.ProducedMaterials {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	required := make([]string, 0, len(ind.RequiredMaterials))
	for name := range ind.RequiredMaterials {
		required = append(required, name)
	}
	sort.Strings(required)
	for _, name := range required {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
