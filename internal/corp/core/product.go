package core

import "strings"

// Product is a sellable product line within one division. Sell and
// production policies are tracked per city.
type Product struct {
	Name         string
	CreationCity string

	// Sunk investment recorded at creation; the simulation uses both to
	// drive quality development.
	DesignCost float64
	AdvCost    float64

	// DevProgress runs 0-100 and is advanced by the simulation.
	DevProgress float64

	SellPrice        Price
	SellPolicies     map[string]SellPolicy
	ProductionLimits map[string]ProductionLimit

	MarketTA1 bool
	MarketTA2 bool
}

// NewProduct creates a product line. The name has markup characters
// stripped; callers must reject products whose sanitized name is empty.
func NewProduct(name, city string, designCost, advCost float64) *Product {
	return &Product{
		Name:             SanitizeProductName(name),
		CreationCity:     city,
		DesignCost:       designCost,
		AdvCost:          advCost,
		SellPolicies:     make(map[string]SellPolicy),
		ProductionLimits: make(map[string]ProductionLimit),
	}
}

// SanitizeProductName strips < and > so a product name can never carry
// markup into the UI.
func SanitizeProductName(name string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(name)
}
