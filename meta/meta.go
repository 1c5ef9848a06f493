// meta/meta.go
package meta

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"
)

// MIN_PLAYERS and MAX_PLAYERS bound the seats at one table.
const (
	MIN_PLAYERS = 2
	MAX_PLAYERS = 4
)

// MAX_TURNS is the hard cap on turns in one game.
const MAX_TURNS = 200

// WINNING_SCORE ends the game at the next round boundary.
const WINNING_SCORE = 15

var ErrInvalidConfig = errors.New("invalid config")

// Config drives a run of experiments. Every field can be set from the
// environment.
type Config struct {
	Games      int      `env:"SPLENDOR_GAMES,default=30"`
	Players    int      `env:"SPLENDOR_PLAYERS,default=2"`
	Seed       uint64   `env:"SPLENDOR_SEED,default=1"`
	LogLevel   string   `env:"SPLENDOR_LOG_LEVEL,default=info"`
	OutputDir  string   `env:"SPLENDOR_OUTPUT_DIR,default=experiments/results"`
	Strategies []string `env:"SPLENDOR_STRATEGIES,default=greedy"`
}

func Defaults() Config {
	return Config{
		Games:      30,
		Players:    MIN_PLAYERS,
		Seed:       1,
		LogLevel:   "info",
		OutputDir:  "experiments/results",
		Strategies: []string{"greedy"},
	}
}

// Load reads Config from the environment, falling back to Defaults for
// anything unset.
func Load() (Config, error) {
	cfg := Defaults()
	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Players < MIN_PLAYERS || c.Players > MAX_PLAYERS {
		return fmt.Errorf("%w: players must be %d to %d, got %d", ErrInvalidConfig, MIN_PLAYERS, MAX_PLAYERS, c.Players)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("%w: no strategies", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return level, nil
}
