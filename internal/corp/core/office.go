package core

import "github.com/openmagnate/magnate/internal/corp/data"

// Office is a per-city staffing facility. Size is the employee capacity,
// always a multiple of the configured base unit.
type Office struct {
	City      string
	Size      int
	Employees []*Employee
}

// NewOffice opens an empty office at the base size.
func NewOffice(city string, size int) *Office {
	return &Office{City: city, Size: size}
}

// AtCapacity reports whether the office can take no more hires.
func (o *Office) AtCapacity() bool {
	return len(o.Employees) >= o.Size
}

// Hire appends an employee if capacity allows.
func (o *Office) Hire(e *Employee) bool {
	if o.AtCapacity() {
		return false
	}
	o.Employees = append(o.Employees, e)
	return true
}

// Employee is one office worker. Morale, happiness and energy run on a
// 0-100 scale and are otherwise advanced by the tick simulation.
type Employee struct {
	Name      string
	Pos       data.Job
	Morale    float64
	Happiness float64
	Energy    float64
}

// partyMoraleDivisor converts money spent per employee into a morale
// multiplier: 1 + cost/divisor.
const partyMoraleDivisor = 10e6

// ThrowParty applies the morale boost for money spent on this employee
// and returns the multiplier used.
func (e *Employee) ThrowParty(costPerEmployee float64) float64 {
	mult := 1 + costPerEmployee/partyMoraleDivisor
	e.Morale = min100(e.Morale * mult)
	e.Happiness = min100(e.Happiness * mult)
	return mult
}

// Refresh bumps energy, used by the coffee purchase.
func (e *Employee) Refresh(mult float64) {
	e.Energy = min100(e.Energy * mult)
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
