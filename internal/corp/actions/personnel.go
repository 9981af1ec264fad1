package actions

import (
	"math"

	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/data"
	"github.com/openmagnate/magnate/internal/corp/events"
)

// AssignJob puts an employee into a position.
func (e *Engine) AssignJob(emp *core.Employee, job string) error {
	const op = "assignJob"
	if !data.ValidJob(job) {
		return core.WrapActionError(op, job, core.ErrInvalidJob)
	}
	emp.Pos = data.Job(job)
	return nil
}

// ThrowParty spends costPerEmployee on every employee in the office and
// returns the resulting morale multiplier. An unaffordable (or invalid)
// party is a no-op returning 0 - there are no partial parties.
func (e *Engine) ThrowParty(corp *core.Corporation, office *core.Office, costPerEmployee float64) float64 {
	if math.IsNaN(costPerEmployee) || costPerEmployee < 0 {
		return 0
	}
	total := costPerEmployee * float64(len(office.Employees))
	if len(office.Employees) == 0 || !corp.Spend(total) {
		return 0
	}

	var mult float64
	for _, emp := range office.Employees {
		mult = emp.ThrowParty(costPerEmployee)
	}

	e.logger.Debug().
		Str("city", office.City).
		Float64("cost", total).
		Float64("multiplier", mult).
		Msg("Party thrown")
	e.publish(events.NewFacilityEvent(events.TypePartyThrown, corp.ID.String(), "", office.City, total))
	return mult
}
