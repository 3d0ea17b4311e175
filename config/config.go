// Package config assembles the application settings from defaults and
// environment variables. Command-line flags are applied on top by main.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Supported UI backends
const (
	BackendTerminal = "terminal"
	BackendRaylib   = "raylib"
)

// UIConfig holds settings for the UI adapters
type UIConfig struct {
	Backend  string // terminal or raylib
	CellSize int    // pixels per grid cell (raylib)
	Sound    bool   // tone on food pickup (terminal)
}

// AppConfig holds the complete application configuration
type AppConfig struct {
	Game  game.Config
	UI    UIConfig
	Seed  uint64 // food placement seed; 0 picks one from the clock
	Debug bool   // write logs to logs/snake.log
}

// Default returns the configuration used when nothing is overridden
func Default() AppConfig {
	return AppConfig{
		Game: game.DefaultConfig(),
		UI: UIConfig{
			Backend:  BackendTerminal,
			CellSize: 32,
			Sound:    true,
		},
	}
}

// FromEnv returns the default configuration with environment overrides.
// Malformed values are ignored.
func FromEnv() AppConfig {
	cfg := Default()
	g := &cfg.Game

	if v := getEnvInt("SNAKE_ROWS", 0); v > 0 {
		g.Rows = v
		g.Start.Row = v / 2
	}
	if v := getEnvInt("SNAKE_COLS", 0); v > 0 {
		g.Cols = v
		g.Start.Col = v / 2
	}
	if v := getEnvInt("SNAKE_START_ROW", -1); v >= 0 {
		g.Start.Row = v
	}
	if v := getEnvInt("SNAKE_START_COL", -1); v >= 0 {
		g.Start.Col = v
	}
	if v := os.Getenv("SNAKE_START_DIRECTION"); v != "" {
		if d, err := types.ParseDirection(v); err == nil {
			g.StartDirection = d
		} else {
			log.Printf("ignoring SNAKE_START_DIRECTION: %v", err)
		}
	}
	if v := getEnvInt("SNAKE_START_LENGTH", 0); v > 0 {
		g.StartLength = v
	}
	if v := getEnvDuration("SNAKE_INTERVAL_MS", 0); v > 0 {
		g.StartInterval = v
	}
	if v := getEnvDuration("SNAKE_INTERVAL_STEP_MS", -1); v >= 0 {
		g.IntervalStep = v
	}
	if v := getEnvDuration("SNAKE_MIN_INTERVAL_MS", 0); v > 0 {
		g.MinInterval = v
	}

	if v := strings.ToLower(os.Getenv("SNAKE_BACKEND")); v == BackendTerminal || v == BackendRaylib {
		cfg.UI.Backend = v
	}
	if v := getEnvInt("SNAKE_CELL_SIZE", 0); v > 0 {
		cfg.UI.CellSize = v
	}
	if os.Getenv("SNAKE_SOUND") == "false" {
		cfg.UI.Sound = false
	}
	if v := os.Getenv("SNAKE_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if os.Getenv("SNAKE_DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration reads a whole number of milliseconds
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if ms := getEnvInt(key, -1); ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultVal
}
