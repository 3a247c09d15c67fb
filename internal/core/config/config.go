// Package config handles configuration loading and validation for tasklet.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasklet/internal/core/styles"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverNutsDB = "nutsdb"
)

// Drivers lists every supported storage driver.
var Drivers = []string{DriverMemory, DriverFile, DriverSQLite, DriverNutsDB}

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	TUI      TUIConfig      `yaml:"tui"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// StorageConfig selects where persisted slots live.
type StorageConfig struct {
	Driver string `yaml:"driver"` // memory, file, sqlite, nutsdb
	Path   string `yaml:"path"`   // file or directory; defaults under the data dir
}

// DatabaseConfig tunes the sqlite driver.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// TUIConfig holds the palettes used for the dark and light themes.
type TUIConfig struct {
	DarkPalette  string `yaml:"dark_palette"`
	LightPalette string `yaml:"light_palette"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: DriverFile,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			BusyTimeout:  5000,
		},
		TUI: TUIConfig{
			DarkPalette:  styles.DefaultDarkPalette,
			LightPalette: styles.DefaultLightPalette,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.TUI.DarkPalette == "" {
		c.TUI.DarkPalette = defaults.TUI.DarkPalette
	}
	if c.TUI.LightPalette == "" {
		c.TUI.LightPalette = defaults.TUI.LightPalette
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if !isValidDriver(c.Storage.Driver) {
		return fmt.Errorf("storage.driver %q is invalid: must be one of %v", c.Storage.Driver, Drivers)
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}

	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout cannot be negative")
	}

	if _, ok := styles.GetPalette(c.TUI.DarkPalette); !ok {
		return fmt.Errorf("tui.dark_palette %q is unknown: must be one of %v", c.TUI.DarkPalette, styles.ThemeNames())
	}

	if _, ok := styles.GetPalette(c.TUI.LightPalette); !ok {
		return fmt.Errorf("tui.light_palette %q is unknown: must be one of %v", c.TUI.LightPalette, styles.ThemeNames())
	}

	return nil
}

// StoragePath returns the configured storage location, or the driver's
// default location under the data directory. The memory driver has no path.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}

	switch c.Storage.Driver {
	case DriverFile:
		return filepath.Join(c.DataDir, "tasklet.json")
	case DriverSQLite:
		return filepath.Join(c.DataDir, "tasklet.db")
	case DriverNutsDB:
		return filepath.Join(c.DataDir, "nutsdb")
	default:
		return ""
	}
}

func isValidDriver(driver string) bool {
	switch driver {
	case DriverMemory, DriverFile, DriverSQLite, DriverNutsDB:
		return true
	default:
		return false
	}
}
