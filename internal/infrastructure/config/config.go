// Package config loads darkstar settings: config.yaml in the darkstar
// home, with environment variables taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const ConfigFile = "config.yaml"

// Config is everything tunable outside the content files.
type Config struct {
	Home            string  `yaml:"-"              env:"DARKSTAR_HOME"`
	DataDir         string  `yaml:"data_dir"       env:"DARKSTAR_DATA_DIR"`
	PlayerName      string  `yaml:"player_name"    env:"DARKSTAR_PLAYER"`
	ShipName        string  `yaml:"ship_name"      env:"DARKSTAR_SHIP"`
	StartRoomID     string  `yaml:"start_room_id"  env:"DARKSTAR_START_ROOM"`
	CrewCount       int     `yaml:"crew_count"     env:"DARKSTAR_CREW_COUNT"`
	WatchDebounceMS int     `yaml:"watch_debounce_ms" env:"DARKSTAR_WATCH_DEBOUNCE_MS"`
	ScrubberEff     float64 `yaml:"co2_scrubber_efficiency"`
	OxygenGenEff    float64 `yaml:"oxygen_generator_efficiency"`
	ThermalEff      float64 `yaml:"thermal_control_efficiency"`
}

// Default returns the configuration used when no file or env overrides
// exist. All life-support components start at full efficiency except
// thermal control, which carries the amber flag from the engineering log.
func Default() Config {
	return Config{
		PlayerName:      "Jack Harrow",
		ShipName:        "Tempus Fugit",
		StartRoomID:     "captains_quarters",
		CrewCount:       1,
		WatchDebounceMS: 500,
		ScrubberEff:     1.0,
		OxygenGenEff:    1.0,
		ThermalEff:      0.0,
	}
}

// DefaultHome resolves ~/.darkstar.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".darkstar"), nil
}

// Load reads config.yaml from the darkstar home (when present) and then
// applies environment overrides. DARKSTAR_HOME relocates the home before
// the file is read, so the config living there is the one loaded. A
// missing file is not an error; a malformed one is.
func Load(homeDir string) (Config, error) {
	if h := os.Getenv("DARKSTAR_HOME"); h != "" {
		homeDir = h
	}

	cfg := Default()
	cfg.Home = homeDir

	path := filepath.Join(homeDir, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env overrides: %w", err)
	}
	if cfg.Home == "" {
		cfg.Home = homeDir
	}
	return cfg, nil
}

// Save writes the configuration back to config.yaml.
func Save(cfg Config) error {
	if err := os.MkdirAll(cfg.Home, 0700); err != nil {
		return fmt.Errorf("failed to create darkstar home: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(cfg.Home, ConfigFile), data, 0600)
}
