package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openmagnate/magnate/internal/config"
	"github.com/openmagnate/magnate/internal/corp/actions"
	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/data"
	"github.com/openmagnate/magnate/internal/corp/events"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	seedFunds := flag.Float64("funds", -1, "Seed funds for the demo corporation (-1 to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	if *seedFunds < 0 {
		*seedFunds = cfg.Demo.SeedFunds
	}

	setupLogging(*logLevel, cfg.Log.Format)

	tables, err := data.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load data tables")
	}

	// Log every successful mutation the engine publishes
	bus := events.NewBus()
	for _, eventType := range []string{
		events.TypeDivisionCreated,
		events.TypeOfficeOpened,
		events.TypeWarehousePurchased,
		events.TypeWarehouseUpgraded,
		events.TypeProductCreated,
		events.TypeResearchUnlocked,
	} {
		bus.SubscribeFunc(eventType, func(ev events.Event) {
			log.Info().
				Str("event", ev.Type()).
				Str("corporation_id", ev.CorporationID()).
				Msg("Event")
		})
	}

	engine := actions.NewEngine(tables, cfg.Economy, log.Logger, bus)
	corp := core.NewCorporation(cfg.Demo.Corporation, *seedFunds)

	log.Info().
		Str("corporation", corp.Name).
		Float64("funds", corp.Funds).
		Msg("Demo scenario starting")

	runDemo(engine, corp, cfg)

	log.Info().
		Float64("funds", corp.Funds).
		Int("divisions", len(corp.Divisions)).
		Msg("Demo scenario finished")
}

// runDemo walks one corporation through a typical early game: found a
// division, open facilities, set trading policies, unlock research.
func runDemo(engine *actions.Engine, corp *core.Corporation, cfg *config.Config) {
	if err := engine.NewDivision(corp, cfg.Demo.Industry, cfg.Demo.DivisionName); err != nil {
		log.Error().Err(err).Msg("Could not create division")
		return
	}
	div, _ := corp.Division(cfg.Demo.DivisionName)

	cities := engine.Tables().Cities
	home, branch := cities[0], cities[1]
	for _, city := range []string{home, branch} {
		if ok, err := engine.NewCity(corp, div, city); err != nil {
			log.Error().Err(err).Str("city", city).Msg("Could not open office")
		} else if !ok {
			log.Warn().Str("city", city).Msg("Not enough funds for office")
		}
	}

	// Staff the home office and run the people actions
	if office, ok := div.Offices[home]; ok {
		for i := 0; i < office.Size; i++ {
			office.Hire(&core.Employee{Name: "hire", Pos: "Unassigned", Morale: 75, Happiness: 75, Energy: 75})
		}
		for _, emp := range office.Employees {
			if err := engine.AssignJob(emp, "Operations"); err != nil {
				log.Error().Err(err).Msg("Could not assign job")
			}
		}
		engine.BuyCoffee(corp, div, office)
		if mult := engine.ThrowParty(corp, office, 100e3); mult > 0 {
			log.Info().Float64("morale_mult", mult).Msg("Party thrown")
		}
	}

	// Warehousing and trading policies
	if engine.PurchaseWarehouse(corp, div, home) {
		wh := div.Warehouses[home]
		engine.UpgradeWarehouse(corp, div, wh)
		engine.SetSmartSupply(wh, true)

		for _, mat := range wh.Materials {
			if err := engine.SellMaterial(mat, "MAX", "MP"); err != nil {
				log.Error().Err(err).Str("material", mat.Name).Msg("Could not set sell policy")
			}
		}
		if mat, ok := wh.Material("Plants"); ok {
			if err := engine.ExportMaterial(div.Name, branch, mat, "MAX/2"); err != nil {
				log.Error().Err(err).Msg("Could not register export")
			}
		}
	}

	// Research points accrue from the tick simulation; grant some so the
	// demo can show the research gate.
	div.ResearchPoints = 6000
	if ok, err := engine.Research(corp, div, "Hi-Tech R&D Laboratory"); err != nil {
		log.Error().Err(err).Msg("Research failed")
	} else if !ok {
		log.Warn().Msg("Not enough research points")
	}

	if ok, err := engine.UnlockUpgrade(corp, "Smart Supply"); err != nil {
		log.Error().Err(err).Msg("Unlock failed")
	} else if !ok {
		log.Warn().Msg("Not enough funds for Smart Supply unlock")
	}
}

func setupLogging(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
