package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/tasklet/internal/core/config"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	DataDir      string
	Driver       string
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasklet", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tasklet")
}

// storagelessCommands are the top-level commands that never touch tasks,
// theme or counter. Opening storage for them would turn a bad storage path
// into a startup error instead of something they can report.
var storagelessCommands = map[string]bool{
	"config":     true,
	"help":       true,
	"h":          true,
	"completion": true,
}

// NeedsStorage reports whether the top-level command name requires the
// storage medium to be opened before it runs. An empty name is the TUI.
func NeedsStorage(command string) bool {
	return !storagelessCommands[command]
}
