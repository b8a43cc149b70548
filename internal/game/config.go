package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Hausk/eclipse/internal/world"
)

// Config holds engine and front-end configuration, read from ECLIPSE_* variables.
type Config struct {
	// Seed for random number generation. Used for reproducible spawns and combat rolls.
	// A seed of 0 means a time-based seed will be used.
	Seed int64 `env:"ECLIPSE_SEED" envDefault:"0"`

	EntityCount   int     `env:"ECLIPSE_ENTITY_COUNT" envDefault:"5"`
	BoundsRadius  float64 `env:"ECLIPSE_BOUNDS_RADIUS" envDefault:"20"`
	TriggerRadius float64 `env:"ECLIPSE_TRIGGER_RADIUS" envDefault:"2"`

	// LogCapacity bounds the combat log to the most recent entries.
	LogCapacity int `env:"ECLIPSE_LOG_CAPACITY" envDefault:"10"`

	// TurnDelay separates the player's action from the enemy's reply.
	TurnDelay time.Duration `env:"ECLIPSE_TURN_DELAY" envDefault:"500ms"`
	// SettleDelay separates the end of combat from the session teardown.
	SettleDelay time.Duration `env:"ECLIPSE_SETTLE_DELAY" envDefault:"2s"`

	FrameRate    int    `env:"ECLIPSE_FRAME_RATE" envDefault:"30"`
	EventLogPath string `env:"ECLIPSE_EVENT_LOG"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		EntityCount:   5,
		BoundsRadius:  20,
		TriggerRadius: 2,
		LogCapacity:   10,
		TurnDelay:     500 * time.Millisecond,
		SettleDelay:   2 * time.Second,
		FrameRate:     30,
	}
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.EntityCount < 0 {
		errs = append(errs, fmt.Errorf("entity count %d is negative", c.EntityCount))
	}
	if c.BoundsRadius <= 0 {
		errs = append(errs, fmt.Errorf("bounds radius %v must be positive", c.BoundsRadius))
	}
	if c.TriggerRadius <= 0 {
		errs = append(errs, fmt.Errorf("trigger radius %v must be positive", c.TriggerRadius))
	}
	if c.LogCapacity < 1 {
		errs = append(errs, fmt.Errorf("log capacity %d must be at least 1", c.LogCapacity))
	}
	if c.TurnDelay < 0 || c.SettleDelay < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if c.FrameRate < 1 {
		errs = append(errs, fmt.Errorf("frame rate %d must be at least 1", c.FrameRate))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Field returns the exploration field; it always covers the spawn bounds.
func (c Config) Field() world.Field {
	if c.BoundsRadius > world.DefaultHalfWidth {
		return world.NewField(c.BoundsRadius)
	}
	return world.NewField(world.DefaultHalfWidth)
}
