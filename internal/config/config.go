// Package config loads binary settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the binaries.
type Config struct {
	Height        int           // Board height; 0 picks a random one
	Width         int           // Board width; 0 picks a random one
	BlockadeRatio float64       // Chance that a cell is blocked
	Seed          int64         // Random seed; 0 is time based
	BaseCost      int           // Orthogonal step cost
	DiagonalBonus float64       // Diagonal step multiplier
	UnitSteps     bool          // Accumulate g as move count
	MaxExpansions int           // Search bound; 0 is unlimited
	Workers       int           // Batch workers; 0 uses every CPU
	Verbose       bool          // Log every expansion
	LogLevel      slog.Level    // Minimum log level
	FrameDelay    time.Duration // Delay between animation frames
	HTTPAddr      string        // Listen address of the visualizer
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		BlockadeRatio: 1.0 / 7,
		BaseCost:      10,
		DiagonalBonus: 1.4,
		LogLevel:      slog.LevelInfo,
		FrameDelay:    80 * time.Millisecond,
		HTTPAddr:      ":8080",
	}
}

// Load reads the given .env files (or ./.env when none are given) and then
// ASTAR_* variables. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a variable lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Defaults()
	p := parser{lookup: lookup}

	p.envInt("ASTAR_HEIGHT", &cfg.Height)
	p.envInt("ASTAR_WIDTH", &cfg.Width)
	p.envFloat("ASTAR_BLOCKADE_RATIO", &cfg.BlockadeRatio)
	p.envInt64("ASTAR_SEED", &cfg.Seed)
	p.envInt("ASTAR_BASE_COST", &cfg.BaseCost)
	p.envFloat("ASTAR_DIAGONAL_BONUS", &cfg.DiagonalBonus)
	p.envBool("ASTAR_UNIT_STEPS", &cfg.UnitSteps)
	p.envInt("ASTAR_MAX_EXPANSIONS", &cfg.MaxExpansions)
	p.envInt("ASTAR_WORKERS", &cfg.Workers)
	p.envBool("ASTAR_VERBOSE", &cfg.Verbose)
	p.envLevel("ASTAR_LOG_LEVEL", &cfg.LogLevel)
	p.envDuration("ASTAR_FRAME_DELAY", &cfg.FrameDelay)
	p.envString("ASTAR_HTTP_ADDR", &cfg.HTTPAddr)
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, cfg.Validate()
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	switch {
	case c.Height < 0 || c.Width < 0:
		return fmt.Errorf("board dimensions must not be negative, got %dx%d", c.Height, c.Width)
	case c.BlockadeRatio < 0 || c.BlockadeRatio > 1:
		return fmt.Errorf("blockade ratio must be within [0, 1], got %v", c.BlockadeRatio)
	case c.BaseCost <= 0:
		return fmt.Errorf("base cost must be positive, got %d", c.BaseCost)
	case c.DiagonalBonus < 1:
		return fmt.Errorf("diagonal bonus must be >= 1, got %v", c.DiagonalBonus)
	case c.MaxExpansions < 0:
		return fmt.Errorf("max expansions must not be negative, got %d", c.MaxExpansions)
	}
	return nil
}

// Logger returns a text logger at the configured level. Verbose lowers the
// level to debug so per-expansion logs show up.
func (c Config) Logger() *slog.Logger {
	level := c.LogLevel
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parser keeps the first error so every variable can be read in sequence.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) get(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func (p *parser) fail(key, value string, err error) {
	p.err = fmt.Errorf("environment variable %s=%q: %w", key, value, err)
}

func (p *parser) envString(key string, dst *string) {
	if value, ok := p.get(key); ok {
		*dst = value
	}
}

func (p *parser) envInt(key string, dst *int) {
	if value, ok := p.get(key); ok {
		v, err := strconv.Atoi(value)
		if err != nil {
			p.fail(key, value, err)
			return
		}
		*dst = v
	}
}

func (p *parser) envInt64(key string, dst *int64) {
	if value, ok := p.get(key); ok {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			p.fail(key, value, err)
			return
		}
		*dst = v
	}
}

func (p *parser) envFloat(key string, dst *float64) {
	if value, ok := p.get(key); ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			p.fail(key, value, err)
			return
		}
		*dst = v
	}
}

func (p *parser) envBool(key string, dst *bool) {
	if value, ok := p.get(key); ok {
		v, err := strconv.ParseBool(value)
		if err != nil {
			p.fail(key, value, err)
			return
		}
		*dst = v
	}
}

func (p *parser) envDuration(key string, dst *time.Duration) {
	if value, ok := p.get(key); ok {
		v, err := time.ParseDuration(value)
		if err != nil {
			p.fail(key, value, err)
			return
		}
		*dst = v
	}
}

func (p *parser) envLevel(key string, dst *slog.Level) {
	if value, ok := p.get(key); ok {
		var v slog.Level
		if err := v.UnmarshalText([]byte(value)); err != nil {
			p.fail(key, value, err)
			return
		}
		*dst = v
	}
}
