package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmagnate/magnate/internal/corp/data"
)

func TestOfficeCapacity(t *testing.T) {
	o := NewOffice("Aevum", 2)
	assert.False(t, o.AtCapacity())

	assert.True(t, o.Hire(&Employee{Name: "a", Pos: data.JobUnassigned}))
	assert.True(t, o.Hire(&Employee{Name: "b", Pos: data.JobUnassigned}))
	assert.True(t, o.AtCapacity())

	// Hiring past capacity is refused, roster unchanged
	assert.False(t, o.Hire(&Employee{Name: "c", Pos: data.JobUnassigned}))
	assert.Len(t, o.Employees, 2)
}

func TestEmployeeThrowParty(t *testing.T) {
	e := &Employee{Morale: 50, Happiness: 40, Energy: 75}

	mult := e.ThrowParty(10e6)
	assert.InDelta(t, 2.0, mult, 1e-12)
	assert.InDelta(t, 100, e.Morale, 1e-12)
	assert.InDelta(t, 80, e.Happiness, 1e-12)

	// Stats cap at 100
	mult = e.ThrowParty(10e6)
	assert.InDelta(t, 2.0, mult, 1e-12)
	assert.Equal(t, 100.0, e.Morale)
	assert.Equal(t, 100.0, e.Happiness)
}

func TestEmployeeRefresh(t *testing.T) {
	e := &Employee{Energy: 90}
	e.Refresh(1.05)
	assert.InDelta(t, 94.5, e.Energy, 1e-12)

	e.Refresh(1.5)
	assert.Equal(t, 100.0, e.Energy)
}
