package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Agent kinds understood by the engine.
const (
	GreedyAgent     = "greedy"
	RandomAgent     = "random"
	StatisticsAgent = "statistics"
)

// Config describes a batch of games.
type Config struct {
	Players      int      `yaml:"players"`
	Games        int      `yaml:"games"`
	Seed         uint64   `yaml:"seed"`
	WinPoints    int      `yaml:"win_points"`
	MaxRounds    int      `yaml:"max_rounds"`
	RandomLayout bool     `yaml:"random_layout"`
	Agents       []string `yaml:"agents"`
	LogLevel     string   `yaml:"log_level"`
	ObserverAddr string   `yaml:"observer_addr"` // empty disables the websocket observer
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Players:   4,
		Games:     1,
		Seed:      1,
		WinPoints: WinPoints,
		MaxRounds: MaxRounds,
		Agents:    []string{GreedyAgent, GreedyAgent, GreedyAgent, GreedyAgent},
		LogLevel:  "info",
	}
}

// Load reads a YAML config from path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the config describes a playable game.
func (c *Config) Validate() error {
	if c.Players < 2 || c.Players > 4 {
		return fmt.Errorf("invalid config: need 2 to 4 players, got %d", c.Players)
	}
	if c.WinPoints <= 0 || c.MaxRounds <= 0 || c.Games <= 0 {
		return fmt.Errorf("invalid config: win_points, max_rounds and games must be positive")
	}
	// Missing agents default to greedy
	for len(c.Agents) < c.Players {
		c.Agents = append(c.Agents, GreedyAgent)
	}
	c.Agents = c.Agents[:c.Players]
	for _, a := range c.Agents {
		switch a {
		case GreedyAgent, RandomAgent, StatisticsAgent:
		default:
			return fmt.Errorf("invalid config: unknown agent %q", a)
		}
	}
	return nil
}
