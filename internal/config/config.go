package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Economy EconomyConfig `mapstructure:"economy"`
	Log     LogConfig     `mapstructure:"log"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// EconomyConfig holds the tuning constants of the action layer: base
// costs, base sizes and geometric growth ratios.
type EconomyConfig struct {
	OfficeInitialCost        float64 `mapstructure:"office_initial_cost"`
	OfficeInitialSize        int     `mapstructure:"office_initial_size"`
	OfficeGrowthRatio        float64 `mapstructure:"office_growth_ratio"`
	WarehouseInitialCost     float64 `mapstructure:"warehouse_initial_cost"`
	WarehouseInitialSize     float64 `mapstructure:"warehouse_initial_size"`
	WarehouseUpgradeBaseCost float64 `mapstructure:"warehouse_upgrade_base_cost"`
	WarehouseGrowthRatio     float64 `mapstructure:"warehouse_growth_ratio"`
	DividendMaxPercent       float64 `mapstructure:"dividend_max_percent"`
	CoffeeEnergyMult         float64 `mapstructure:"coffee_energy_mult"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig holds settings for the demo scenario runner
type DemoConfig struct {
	SeedFunds    float64 `mapstructure:"seed_funds"`
	Corporation  string  `mapstructure:"corporation"`
	Industry     string  `mapstructure:"industry"`
	DivisionName string  `mapstructure:"division_name"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Economy defaults
	v.SetDefault("economy.office_initial_cost", 4e9)
	v.SetDefault("economy.office_initial_size", 3)
	v.SetDefault("economy.office_growth_ratio", 1.09)
	v.SetDefault("economy.warehouse_initial_cost", 5e9)
	v.SetDefault("economy.warehouse_initial_size", 100)
	v.SetDefault("economy.warehouse_upgrade_base_cost", 1e9)
	v.SetDefault("economy.warehouse_growth_ratio", 1.07)
	v.SetDefault("economy.dividend_max_percent", 50)
	v.SetDefault("economy.coffee_energy_mult", 1.05)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Demo defaults
	v.SetDefault("demo.seed_funds", 150e9)
	v.SetDefault("demo.corporation", "Magnate Demo Corp")
	v.SetDefault("demo.industry", "Agriculture")
	v.SetDefault("demo.division_name", "MagnaFarm")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/magnate")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("MAGNATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Economy.OfficeInitialCost <= 0 {
		return fmt.Errorf("economy.office_initial_cost must be positive")
	}
	if c.Economy.OfficeInitialSize <= 0 {
		return fmt.Errorf("economy.office_initial_size must be positive")
	}
	if c.Economy.OfficeGrowthRatio <= 1 {
		return fmt.Errorf("economy.office_growth_ratio must be greater than 1")
	}
	if c.Economy.WarehouseInitialCost <= 0 {
		return fmt.Errorf("economy.warehouse_initial_cost must be positive")
	}
	if c.Economy.WarehouseInitialSize <= 0 {
		return fmt.Errorf("economy.warehouse_initial_size must be positive")
	}
	if c.Economy.WarehouseUpgradeBaseCost <= 0 {
		return fmt.Errorf("economy.warehouse_upgrade_base_cost must be positive")
	}
	if c.Economy.WarehouseGrowthRatio <= 1 {
		return fmt.Errorf("economy.warehouse_growth_ratio must be greater than 1")
	}
	if c.Economy.DividendMaxPercent <= 0 || c.Economy.DividendMaxPercent > 100 {
		return fmt.Errorf("economy.dividend_max_percent must be between 0 and 100")
	}
	if c.Economy.CoffeeEnergyMult < 1 {
		return fmt.Errorf("economy.coffee_energy_mult must be at least 1")
	}

	if c.Demo.SeedFunds < 0 {
		return fmt.Errorf("demo.seed_funds must be non-negative")
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}

	return nil
}
