package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir string `yaml:"-"`
	DBPath  string `yaml:"-"`

	// Seed values for the settings record on first run.
	Bedtime   string `yaml:"bedtime"`
	WakeTime  string `yaml:"wake_time"`
	GoalHours int    `yaml:"goal_hours"`
}

// New resolves the data directory and applies config.yaml overrides when the
// file exists. A missing file is not an error; a malformed one is.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:   dataDir,
		DBPath:    filepath.Join(dataDir, "sleepmaster.db"),
		Bedtime:   "11:00 PM",
		WakeTime:  "7:00 AM",
		GoalHours: 8,
	}
	payload, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// DefaultDataDir is ~/.sleepmaster, falling back to the working directory
// when the home dir cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sleepmaster"
	}
	return filepath.Join(home, ".sleepmaster")
}
