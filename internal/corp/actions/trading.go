package actions

import (
	"math"

	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/expr"
)

// SellMaterial sets a material's sell policy from user-entered price and
// quantity strings. The price may reference MP; the quantity may
// reference MAX or PROD. Empty fields read as "0", and a quantity of
// exactly zero disables the policy. Both fields are validated before
// either is stored, so a bad quantity never leaves a half-updated
// policy behind.
func (e *Engine) SellMaterial(mat *core.Material, amt, price string) error {
	const op = "sellMaterial"

	if price == "" {
		price = "0"
	}
	if amt == "" {
		amt = "0"
	}

	priceRes, err := expr.Evaluate(expr.MaterialPrice, price, mat.MarketCost)
	if err != nil {
		return core.WrapActionError(op, mat.Name, err)
	}
	amtRes, err := expr.Evaluate(expr.SellQuantity, amt, 1)
	if err != nil {
		return core.WrapActionError(op, mat.Name, err)
	}

	mat.SellPrice = toPrice(priceRes)
	mat.SellPolicy = toSellPolicy(amtRes)

	e.logger.Debug().
		Str("material", mat.Name).
		Bool("enabled", mat.SellPolicy.Enabled()).
		Msg("Material sell policy updated")
	return nil
}

// SellProduct sets a product's sell policy for one city, or for every
// known city when all is set. Fan-out is all-or-nothing: evaluation
// happens once up front and a failure updates no city at all.
func (e *Engine) SellProduct(prod *core.Product, city string, amt, price string, all bool) error {
	const op = "sellProduct"

	if !all && !e.tables.ValidCity(city) {
		return core.WrapActionError(op, city, core.ErrUnknownCity)
	}

	priceRes, err := expr.Evaluate(expr.ProductPrice, price, 1)
	if err != nil {
		return core.WrapActionError(op, prod.Name, err)
	}
	amtRes, err := expr.Evaluate(expr.SellQuantity, amt, 1)
	if err != nil {
		return core.WrapActionError(op, prod.Name, err)
	}

	prod.SellPrice = toPrice(priceRes)
	policy := toSellPolicy(amtRes)

	targets := []string{city}
	if all {
		targets = e.tables.Cities
	}
	for _, c := range targets {
		prod.SellPolicies[c] = policy
	}

	e.logger.Debug().
		Str("product", prod.Name).
		Bool("all_cities", all).
		Bool("enabled", policy.Enabled()).
		Msg("Product sell policy updated")
	return nil
}

// LimitProductProduction caps a product's per-city output. Negative or
// NaN quantities disable the limit; zero is a valid ceiling. This never
// fails: the sentinel inputs are the disable switch.
func (e *Engine) LimitProductProduction(prod *core.Product, city string, qty float64) {
	if qty < 0 || math.IsNaN(qty) {
		prod.ProductionLimits[city] = core.NoProductionLimit()
		return
	}
	prod.ProductionLimits[city] = core.LimitProductionAt(qty)
}

// ExportMaterial registers a standing export of a material to another
// division's warehouse. The amount expression may reference MAX and is
// stored sanitized for the simulation to resolve each tick.
func (e *Engine) ExportMaterial(targetDivision, targetCity string, mat *core.Material, amt string) error {
	const op = "exportMaterial"

	if _, err := expr.Evaluate(expr.ExportAmount, amt, 1); err != nil {
		return core.WrapActionError(op, mat.Name, err)
	}

	mat.Exports = append(mat.Exports, core.ExportRoute{
		Division: targetDivision,
		City:     targetCity,
		Amount:   expr.Sanitize(expr.ExportAmount, amt),
	})
	e.logger.Debug().
		Str("material", mat.Name).
		Str("target_division", targetDivision).
		Str("target_city", targetCity).
		Msg("Export registered")
	return nil
}

// CancelExportMaterial removes the first export route matching all three
// fields exactly, leaving the rest in registration order.
func (e *Engine) CancelExportMaterial(targetDivision, targetCity string, mat *core.Material, amt string) {
	for i, route := range mat.Exports {
		if route.Division != targetDivision || route.City != targetCity || route.Amount != amt {
			continue
		}
		mat.Exports = append(mat.Exports[:i], mat.Exports[i+1:]...)
		return
	}
}

// BuyMaterial sets the requested per-tick purchase rate.
func (e *Engine) BuyMaterial(mat *core.Material, amt float64) error {
	const op = "buyMaterial"
	if math.IsNaN(amt) || amt < 0 {
		return core.WrapActionError(op, mat.Name, core.ErrInvalidAmount)
	}
	mat.Buy = amt
	return nil
}

// BulkPurchaseMaterial sets a one-off bulk purchase amount consumed by
// the next tick.
func (e *Engine) BulkPurchaseMaterial(mat *core.Material, amt float64) error {
	const op = "bulkPurchaseMaterial"
	if math.IsNaN(amt) || amt < 0 {
		return core.WrapActionError(op, mat.Name, core.ErrInvalidAmount)
	}
	mat.BuyBulk = amt
	return nil
}

// SetSmartSupply toggles automated supply purchasing for a warehouse.
func (e *Engine) SetSmartSupply(wh *core.Warehouse, on bool) {
	wh.SmartSupplyEnabled = on
}

// SetSmartSupplyUseLeftovers toggles whether smart supply counts an
// existing stock of one material against its purchases.
func (e *Engine) SetSmartSupplyUseLeftovers(wh *core.Warehouse, materialName string, useLeftovers bool) error {
	const op = "setSmartSupplyUseLeftovers"
	if _, ok := wh.SmartSupplyUseLeftovers[materialName]; !ok {
		return core.WrapActionError(op, materialName, core.ErrUnknownMaterial)
	}
	wh.SmartSupplyUseLeftovers[materialName] = useLeftovers
	return nil
}

// SetMaterialMarketTA1 toggles first-tier automated pricing assistance.
func (e *Engine) SetMaterialMarketTA1(mat *core.Material, on bool) { mat.MarketTA1 = on }

// SetMaterialMarketTA2 toggles second-tier automated pricing assistance.
func (e *Engine) SetMaterialMarketTA2(mat *core.Material, on bool) { mat.MarketTA2 = on }

// SetProductMarketTA1 toggles first-tier automated pricing assistance.
func (e *Engine) SetProductMarketTA1(prod *core.Product, on bool) { prod.MarketTA1 = on }

// SetProductMarketTA2 toggles second-tier automated pricing assistance.
func (e *Engine) SetProductMarketTA2(prod *core.Product, on bool) { prod.MarketTA2 = on }

// toPrice converts an evaluation result into a stored price.
func toPrice(r expr.Result) core.Price {
	if r.IsMacro() {
		return core.DynamicPrice(r.Macro)
	}
	return core.FixedPrice(r.Num)
}

// toSellPolicy converts an evaluation result into a stored sell policy.
// A plain quantity of exactly zero disables the policy.
func toSellPolicy(r expr.Result) core.SellPolicy {
	if r.IsMacro() {
		return core.DynamicSellPolicy(r.Macro)
	}
	if r.Num == 0 {
		return core.DisabledSellPolicy()
	}
	return core.ManualSellPolicy(r.Num)
}
