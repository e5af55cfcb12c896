package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Simulation SimulationConfig `toml:"simulation"`
	Data       DataConfig       `toml:"data"`
	Logging    LoggingConfig    `toml:"logging"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	StartTime int64  // set at boot, not from config
}

type SimulationConfig struct {
	TickRate  time.Duration `toml:"tick_rate"`
	Seed      int64         `toml:"seed"`       // 0 = seed from the clock
	BaseSpeed float32       `toml:"base_speed"` // player speed; homing steers at 1.2x
	Friction  float32       `toml:"friction"`   // velocity kept per tick, 0..1
	MaxTicks  uint64        `toml:"max_ticks"`  // 0 = run until signalled
	AOICell   float32       `toml:"aoi_cell"`   // 0 = linear enemy scan
}

type DataConfig struct {
	Species string `toml:"species"`
	Spawns  string `toml:"spawns"`
	Maze    string `toml:"maze"`
	Scripts string `toml:"scripts"` // directory holding ai/*.lua
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Server.StartTime = time.Now().Unix()
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %s", c.Simulation.TickRate)
	}
	if c.Simulation.BaseSpeed <= 0 {
		return fmt.Errorf("simulation.base_speed must be positive")
	}
	if c.Simulation.Friction < 0 || c.Simulation.Friction > 1 {
		return fmt.Errorf("simulation.friction must be in [0,1], got %g", c.Simulation.Friction)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "arenasim",
		},
		Simulation: SimulationConfig{
			TickRate:  40 * time.Millisecond, // 25 ticks per second
			BaseSpeed: 4,
			Friction:  0.8,
			AOICell:   500,
		},
		Data: DataConfig{
			Species: "data/yaml/species.yaml",
			Spawns:  "data/yaml/spawns.yaml",
			Maze:    "data/yaml/maze.yaml",
			Scripts: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
