package core

// Material is a tradeable commodity held in one warehouse.
type Material struct {
	Name string

	// MarketCost is the production cost basis the MP macro resolves
	// against; the tick simulation keeps it current.
	MarketCost float64

	// Qty is the stocked amount, owned by the tick simulation.
	Qty float64

	// Buy is the requested purchase rate per tick; BuyBulk a one-off
	// bulk purchase amount consumed by the next tick.
	Buy     float64
	BuyBulk float64

	SellPrice  Price
	SellPolicy SellPolicy

	// Exports are standing per-tick transfers to other warehouses,
	// appended in registration order.
	Exports []ExportRoute

	MarketTA1 bool
	MarketTA2 bool
}

// NewMaterial returns an inert material: nothing bought, nothing sold.
func NewMaterial(name string) *Material {
	return &Material{Name: name}
}

// ExportRoute is one standing export: Amount is a sanitized quantity
// expression (MAX allowed), resolved by the simulation each tick.
type ExportRoute struct {
	Division string
	City     string
	Amount   string
}
