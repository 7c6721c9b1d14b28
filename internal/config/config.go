// Package config loads game settings from an optional YAML file, then
// applies CATAN_* environment overrides.
//
// Example file:
//
//	# cap the game at 500 rounds
//	turns: 500
//	seed: 42
//	players: 4
//	agent: planner
//	journal: ./catan.db
//	listen: :8080
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/agents"
)

const (
	DefaultTurns   = 8192
	DefaultPlayers = 4
	MinTurns       = 1
	MaxTurns       = 8192
	MinPlayers     = 2
	MaxPlayers     = 4
)

// Config holds the settings for one run.
type Config struct {
	Turns      int           `yaml:"turns"       env:"CATAN_TURNS"`
	Seed       int64         `yaml:"seed"        env:"CATAN_SEED"` // 0 = fresh seed
	Players    int           `yaml:"players"     env:"CATAN_PLAYERS"`
	Agent      string        `yaml:"agent"       env:"CATAN_AGENT"`
	Journal    string        `yaml:"journal"     env:"CATAN_JOURNAL"` // SQLite path; empty disables
	Listen     string        `yaml:"listen"      env:"CATAN_LISTEN"`  // HTTP address; empty disables
	Verbose    bool          `yaml:"verbose"     env:"CATAN_VERBOSE"`
	RoundDelay time.Duration `yaml:"round_delay" env:"CATAN_ROUND_DELAY"`
}

// fileConfig mirrors Config with turns as a pointer so a file that omits
// it can be told apart from one that sets it to zero.
type fileConfig struct {
	Turns      *int          `yaml:"turns"`
	Seed       int64         `yaml:"seed"`
	Players    int           `yaml:"players"`
	Agent      string        `yaml:"agent"`
	Journal    string        `yaml:"journal"`
	Listen     string        `yaml:"listen"`
	Verbose    bool          `yaml:"verbose"`
	RoundDelay time.Duration `yaml:"round_delay"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Turns:   DefaultTurns,
		Players: DefaultPlayers,
		Agent:   string(agents.KindRandom),
	}
}

// Load reads path (if it exists), applies environment overrides, and
// validates the result. An empty path or a missing file yields defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if cfg, err = Parse(data); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a config file. The file must set turns; other keys fall
// back to defaults.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if fc.Turns == nil {
		return Config{}, errors.New("parse config: missing turns")
	}

	cfg := Default()
	cfg.Turns = *fc.Turns
	cfg.Seed = fc.Seed
	cfg.Journal = fc.Journal
	cfg.Listen = fc.Listen
	cfg.Verbose = fc.Verbose
	cfg.RoundDelay = fc.RoundDelay
	if fc.Players != 0 {
		cfg.Players = fc.Players
	}
	if fc.Agent != "" {
		cfg.Agent = fc.Agent
	}
	return cfg, nil
}

// ParseEnv overlays CATAN_* environment variables onto target.
// Unset variables leave fields untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every field is in range.
func (c Config) Validate() error {
	if c.Turns < MinTurns || c.Turns > MaxTurns {
		return fmt.Errorf("turns %d out of range [%d, %d]", c.Turns, MinTurns, MaxTurns)
	}
	if c.Players < MinPlayers || c.Players > MaxPlayers {
		return fmt.Errorf("players %d out of range [%d, %d]", c.Players, MinPlayers, MaxPlayers)
	}
	if _, err := agents.ParseKind(c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if c.RoundDelay < 0 {
		return fmt.Errorf("round_delay %s is negative", c.RoundDelay)
	}
	return nil
}

// Kind returns the configured agent strategy. Call after Validate.
func (c Config) Kind() agents.Kind {
	return agents.Kind(c.Agent)
}
