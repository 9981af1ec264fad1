package events

import "time"

// Event type constants
const (
	TypeDivisionCreated     = "division.created"
	TypeOfficeOpened        = "office.opened"
	TypeOfficeExpanded      = "office.expanded"
	TypeWarehousePurchased  = "warehouse.purchased"
	TypeWarehouseUpgraded   = "warehouse.upgraded"
	TypeUpgradeUnlocked     = "upgrade.unlocked"
	TypeUpgradeLeveled      = "upgrade.leveled"
	TypeProductCreated      = "product.created"
	TypeResearchUnlocked    = "research.unlocked"
	TypeDividendsIssued     = "dividends.issued"
	TypePartyThrown         = "party.thrown"
)

// DivisionCreatedEvent is published when a new division is founded.
type DivisionCreatedEvent struct {
	BaseEvent
	Division string
	Industry string
	Cost     float64
}

// NewDivisionCreatedEvent creates a DivisionCreatedEvent.
func NewDivisionCreatedEvent(corpID, division, industry string, cost float64) *DivisionCreatedEvent {
	return &DivisionCreatedEvent{
		BaseEvent: BaseEvent{EventType: TypeDivisionCreated, Time: time.Now(), Corp: corpID},
		Division:  division,
		Industry:  industry,
		Cost:      cost,
	}
}

// FacilityEvent covers office and warehouse lifecycle events.
type FacilityEvent struct {
	BaseEvent
	Division string
	City     string
	Cost     float64
}

// NewFacilityEvent creates a FacilityEvent with the given type constant.
func NewFacilityEvent(eventType, corpID, division, city string, cost float64) *FacilityEvent {
	return &FacilityEvent{
		BaseEvent: BaseEvent{EventType: eventType, Time: time.Now(), Corp: corpID},
		Division:  division,
		City:      city,
		Cost:      cost,
	}
}

// UpgradeEvent is published when a corporation upgrade is bought.
type UpgradeEvent struct {
	BaseEvent
	Upgrade string
	Level   int
	Cost    float64
}

// NewUpgradeEvent creates an UpgradeEvent with the given type constant.
func NewUpgradeEvent(eventType, corpID, upgrade string, level int, cost float64) *UpgradeEvent {
	return &UpgradeEvent{
		BaseEvent: BaseEvent{EventType: eventType, Time: time.Now(), Corp: corpID},
		Upgrade:   upgrade,
		Level:     level,
		Cost:      cost,
	}
}

// ProductCreatedEvent is published when a product line is started.
type ProductCreatedEvent struct {
	BaseEvent
	Division   string
	Product    string
	City       string
	Investment float64
}

// NewProductCreatedEvent creates a ProductCreatedEvent.
func NewProductCreatedEvent(corpID, division, product, city string, investment float64) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseEvent:  BaseEvent{EventType: TypeProductCreated, Time: time.Now(), Corp: corpID},
		Division:   division,
		Product:    product,
		City:       city,
		Investment: investment,
	}
}

// ResearchUnlockedEvent is published when a research node is unlocked.
type ResearchUnlockedEvent struct {
	BaseEvent
	Division string
	Research string
	Cost     float64
}

// NewResearchUnlockedEvent creates a ResearchUnlockedEvent.
func NewResearchUnlockedEvent(corpID, division, research string, cost float64) *ResearchUnlockedEvent {
	return &ResearchUnlockedEvent{
		BaseEvent: BaseEvent{EventType: TypeResearchUnlocked, Time: time.Now(), Corp: corpID},
		Division:  division,
		Research:  research,
		Cost:      cost,
	}
}
