package testutil

import (
	"fmt"

	"github.com/openmagnate/magnate/internal/config"
	"github.com/openmagnate/magnate/internal/corp/actions"
	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/data"
)

// testTablesYAML is a compact data set with round numbers so cost
// assertions stay readable.
const testTablesYAML = `
cities: [Aevum, Chongqing, Sector-12]
industries:
  - type: Agriculture
    starting_cost: 1000
    required_materials: {Water: 0.5}
    produced_materials: [Plants, Food]
    makes_products: false
    research:
      name: Lab
      cost: 50
      children:
        - name: AutoBrew
          cost: 100
  - type: Software
    starting_cost: 2000
    required_materials: {Energy: 0.5}
    produced_materials: [AI Cores]
    makes_products: true
    research:
      name: Lab
      cost: 50
unlock_upgrades:
  - name: Export
    cost: 200
leveled_upgrades:
  - name: Smart Factories
    base_cost: 100
    price_mult: 2
industry_upgrades:
  - name: Coffee
    base_cost: 10
    price_mult: 1
    per_employee: true
  - name: AdVert
    base_cost: 100
    price_mult: 2
    per_employee: false
`

// TestTables parses the compact test data set.
func TestTables() *data.Tables {
	t, err := data.Parse([]byte(testTablesYAML))
	if err != nil {
		panic("testutil: bad test tables: " + err.Error())
	}
	return t
}

// TestEconomy returns economy constants with round numbers for tests.
func TestEconomy() config.EconomyConfig {
	return config.EconomyConfig{
		OfficeInitialCost:        100,
		OfficeInitialSize:        3,
		OfficeGrowthRatio:        1.09,
		WarehouseInitialCost:     500,
		WarehouseInitialSize:     100,
		WarehouseUpgradeBaseCost: 100,
		WarehouseGrowthRatio:     1.07,
		DividendMaxPercent:       50,
		CoffeeEnergyMult:         1.05,
	}
}

// NewTestEngine creates an action engine over the test tables with a
// no-op logger and no event bus.
func NewTestEngine() *actions.Engine {
	return actions.NewEngine(TestTables(), TestEconomy(), NopLogger(), nil)
}

// NewTestCorporation founds a corporation with the given seed funds.
func NewTestCorporation(funds float64) *core.Corporation {
	return core.NewCorporation("TestCorp", funds)
}

// Staff fills an office with n employees at full stats.
func Staff(office *core.Office, n int) {
	for i := 0; i < n; i++ {
		office.Employees = append(office.Employees, &core.Employee{
			Name:      fmt.Sprintf("emp-%d", i),
			Pos:       data.JobUnassigned,
			Morale:    75,
			Happiness: 75,
			Energy:    75,
		})
	}
}
