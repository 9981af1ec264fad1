package actions

import (
	"math"

	"github.com/openmagnate/magnate/internal/common"
	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/events"
)

// MakeProduct starts a new product line with sunk design and marketing
// investment. Negative investments clamp to zero, NaN is rejected, the
// name is stripped of markup and must stay non-empty, and the combined
// investment is funds-gated. The product is keyed by its sanitized name.
func (e *Engine) MakeProduct(corp *core.Corporation, div *core.Division, city, name string, designInvest, marketingInvest float64) error {
	const op = "makeProduct"

	designInvest = common.ClampNonNegative(designInvest)
	marketingInvest = common.ClampNonNegative(marketingInvest)
	if math.IsNaN(designInvest) {
		return core.WrapActionError(op, "design investment", core.ErrInvalidAmount)
	}
	if math.IsNaN(marketingInvest) {
		return core.WrapActionError(op, "marketing investment", core.ErrInvalidAmount)
	}

	sanitized := core.SanitizeProductName(name)
	if sanitized == "" {
		return core.WrapActionError(op, name, core.ErrEmptyName)
	}

	total := designInvest + marketingInvest
	if !corp.CanAfford(total) {
		return core.WrapActionError(op, sanitized, core.ErrInsufficientFunds)
	}
	if _, exists := div.Products[sanitized]; exists {
		return core.WrapActionError(op, sanitized, core.ErrDuplicateName)
	}

	corp.Spend(total)
	prod := core.NewProduct(sanitized, city, designInvest, marketingInvest)
	div.Products[prod.Name] = prod

	e.logger.Debug().
		Str("division", div.Name).
		Str("product", prod.Name).
		Str("city", city).
		Float64("investment", total).
		Msg("Product created")
	e.publish(events.NewProductCreatedEvent(corp.ID.String(), div.Name, prod.Name, city, total))
	return nil
}
