package core

// Warehouse is a per-city storage facility. Size derives from Level via
// UpdateSize; materials are created once at purchase time from the
// industry's required-material table.
type Warehouse struct {
	City  string
	Level int
	Size  float64

	SmartSupplyEnabled      bool
	SmartSupplyUseLeftovers map[string]bool

	Materials map[string]*Material
}

// NewWarehouse builds a level-0 warehouse stocked with zeroed materials
// for each of the given names.
func NewWarehouse(city string, baseSize float64, materialNames []string) *Warehouse {
	w := &Warehouse{
		City:                    city,
		SmartSupplyUseLeftovers: make(map[string]bool),
		Materials:               make(map[string]*Material, len(materialNames)),
	}
	for _, name := range materialNames {
		w.Materials[name] = NewMaterial(name)
		w.SmartSupplyUseLeftovers[name] = true
	}
	w.UpdateSize(baseSize)
	return w
}

// UpdateSize recomputes capacity from the current level. Called after
// every level change.
func (w *Warehouse) UpdateSize(baseSize float64) {
	w.Size = float64(w.Level+1) * baseSize
}

// Material returns the named material stored here.
func (w *Warehouse) Material(name string) (*Material, bool) {
	m, ok := w.Materials[name]
	return m, ok
}
