package core

import (
	"github.com/google/uuid"

	"github.com/openmagnate/magnate/internal/corp/data"
)

// Division is one industry operation within a corporation. Offices and
// warehouses are keyed by city, at most one of each per city; products
// are keyed by their sanitized name.
type Division struct {
	ID   uuid.UUID
	Name string
	Type string

	Offices    map[string]*Office
	Warehouses map[string]*Warehouse
	Products   map[string]*Product

	// Researched mirrors the unlocked flags inside Tree; the two are
	// updated together and must never disagree.
	Researched     map[string]bool
	ResearchPoints float64
	Tree           *data.ResearchTree

	// UpgradeLevels tracks division-scoped purchases (AdVert, Coffee).
	UpgradeLevels map[string]int
}

// NewDivision creates an empty division of the given industry type with
// its own research tree copy.
func NewDivision(name, industryType string, tree *data.ResearchTree) *Division {
	return &Division{
		ID:            uuid.New(),
		Name:          name,
		Type:          industryType,
		Offices:       make(map[string]*Office),
		Warehouses:    make(map[string]*Warehouse),
		Products:      make(map[string]*Product),
		Researched:    make(map[string]bool),
		Tree:          tree,
		UpgradeLevels: make(map[string]int),
	}
}

// HasResearch reports whether the named node is unlocked.
func (d *Division) HasResearch(name string) bool {
	return d.Researched[name]
}
