package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	MaxCells         = 512
	DefaultColCount  = 35
	DefaultRowCount  = 20
	TickDuration     = 100 * time.Millisecond
	MinTickDuration  = 50 * time.Millisecond
	MaxTickDuration  = time.Second
	FrameDuration    = 16 * time.Millisecond
	SnakeSpawnX      = 0
	SnakeSpawnY      = 4
	envTick          = "SNAKE2D_TICK"
	envSeed          = "SNAKE2D_SEED"
	envEdge          = "SNAKE2D_EDGE"
	envLogPath       = "SNAKE2D_LOG_PATH"
	minBoardCellSize = 2
)

type Config struct {
	Width        int
	Height       int
	TickInterval time.Duration
	// Seed feeds the apple spawner once. Zero picks a seed from the clock.
	Seed     int64
	Boundary BoundaryRule
	LogPath  string
}

func DefaultConfig() Config {
	return Config{
		Width:        DefaultColCount,
		Height:       DefaultRowCount,
		TickInterval: TickDuration,
		Boundary:     BoundaryStrict,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies SNAKE2D_* overrides.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(envTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envTick, v, err)
		}
		cfg.TickInterval = d
	}

	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(envEdge); v != "" {
		rule, err := ParseBoundaryRule(v)
		if err != nil {
			return cfg, err
		}
		cfg.Boundary = rule
	}

	cfg.LogPath = os.Getenv(envLogPath)

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width < minBoardCellSize || c.Height < minBoardCellSize {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Width, c.Height, minBoardCellSize, minBoardCellSize)
	}

	if SnakeSpawnX >= c.Width || SnakeSpawnY >= c.Height {
		return fmt.Errorf("%w: spawn cell (%d,%d) is outside a %dx%d board",
			ErrInvalidConfig, SnakeSpawnX, SnakeSpawnY, c.Width, c.Height)
	}

	if c.TickInterval < MinTickDuration || c.TickInterval > MaxTickDuration {
		return fmt.Errorf("%w: tick %v outside [%v, %v]",
			ErrInvalidConfig, c.TickInterval, MinTickDuration, MaxTickDuration)
	}

	if c.Boundary != BoundaryStrict && c.Boundary != BoundaryOverhang {
		return fmt.Errorf("%w: boundary rule %d", ErrInvalidConfig, c.Boundary)
	}

	return nil
}

func (c Config) Bounds() Bounds {
	return Bounds{Width: c.Width, Height: c.Height, Rule: c.Boundary}
}
