package core

// Price is the asking price of a material or product: either a fixed
// number or a retained macro expression (containing MP) that the tick
// simulation resolves against the live cost basis.
type Price struct {
	num  float64
	expr string
}

// FixedPrice returns a price pinned to v.
func FixedPrice(v float64) Price { return Price{num: v} }

// DynamicPrice returns a price driven by a sanitized macro expression.
func DynamicPrice(expr string) Price { return Price{expr: expr} }

// Dynamic reports whether the price is macro-driven.
func (p Price) Dynamic() bool { return p.expr != "" }

// Amount returns the fixed price. Meaningful only when !Dynamic().
func (p Price) Amount() float64 { return p.num }

// Expr returns the macro expression. Empty unless Dynamic().
func (p Price) Expr() string { return p.expr }

// SellPolicy governs how much of a material or product is offered each
// tick. The disabled variant carries no payload; an enabled policy holds
// either a fixed quantity or a macro expression (MAX/PROD), never both.
type SellPolicy struct {
	enabled bool
	qty     float64
	expr    string
}

// DisabledSellPolicy is the zero value: nothing offered.
func DisabledSellPolicy() SellPolicy { return SellPolicy{} }

// ManualSellPolicy offers a fixed quantity per tick.
func ManualSellPolicy(qty float64) SellPolicy {
	return SellPolicy{enabled: true, qty: qty}
}

// DynamicSellPolicy offers a macro-driven quantity per tick.
func DynamicSellPolicy(expr string) SellPolicy {
	return SellPolicy{enabled: true, expr: expr}
}

// Enabled reports whether the policy offers anything at all.
func (p SellPolicy) Enabled() bool { return p.enabled }

// Quantity returns the fixed quantity and true when the policy is enabled
// and manual.
func (p SellPolicy) Quantity() (float64, bool) {
	return p.qty, p.enabled && p.expr == ""
}

// Expr returns the macro expression and true when the policy is enabled
// and macro-driven.
func (p SellPolicy) Expr() (string, bool) {
	return p.expr, p.enabled && p.expr != ""
}

// ProductionLimit caps per-city product output. Disabled carries no
// payload; a limit of 0 is a valid "produce nothing" ceiling, which is
// why disabling happens only through negative/NaN input, not zero.
type ProductionLimit struct {
	enabled bool
	limit   float64
}

// NoProductionLimit is the zero value: output is uncapped.
func NoProductionLimit() ProductionLimit { return ProductionLimit{} }

// LimitProductionAt caps output at qty per tick.
func LimitProductionAt(qty float64) ProductionLimit {
	return ProductionLimit{enabled: true, limit: qty}
}

// Limit returns the ceiling and whether one is set.
func (l ProductionLimit) Limit() (float64, bool) {
	return l.limit, l.enabled
}
