// Package actions implements the player-facing action layer: validated,
// atomic, funds-gated transitions of the economy graph. Every operation
// validates its inputs, computes a cost, re-checks affordability
// immediately before the debit, and either mutates fully or not at all.
// Execution is single-threaded per corporation; callers serialize actions
// against the tick simulation.
package actions

import (
	"github.com/rs/zerolog"

	"github.com/openmagnate/magnate/internal/config"
	"github.com/openmagnate/magnate/internal/corp/data"
	"github.com/openmagnate/magnate/internal/corp/events"
)

// Engine executes actions against corporations. Static tables and
// economy constants are injected at construction; the engine itself is
// stateless between calls.
type Engine struct {
	tables *data.Tables
	econ   config.EconomyConfig
	logger zerolog.Logger
	bus    events.Publisher
}

// NewEngine creates an action engine. bus may be nil when no one listens.
func NewEngine(tables *data.Tables, econ config.EconomyConfig, logger zerolog.Logger, bus events.Publisher) *Engine {
	return &Engine{
		tables: tables,
		econ:   econ,
		logger: logger.With().Str("component", "action_engine").Logger(),
		bus:    bus,
	}
}

// Tables exposes the injected static tables for callers that need to
// enumerate cities, industries or upgrades.
func (e *Engine) Tables() *data.Tables { return e.tables }

func (e *Engine) publish(ev events.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
