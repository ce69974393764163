package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Config holds the settings of the terminal table.
type Config struct {
	FlipTime time.Duration
	// Seed makes every shuffle reproducible. Nil means cryptographic shuffles.
	Seed     *uint64
	FPS      int
	LogLevel pterm.LogLevel
	History  int
}

// Load reads the configuration from SNAP_* environment variables.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	c := Config{
		FlipTime: time.Second,
		FPS:      60,
		History:  5,
	}

	if v := getenv("SNAP_FLIP_TIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SNAP_FLIP_TIME %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SNAP_FLIP_TIME %q: must be positive", v)
		}
		c.FlipTime = d
	}

	if v := getenv("SNAP_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SNAP_SEED %q: %w", v, err)
		}
		c.Seed = &seed
	}

	if v := getenv("SNAP_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps < 1 || fps > 240 {
			return Config{}, fmt.Errorf("invalid SNAP_FPS %q: want 1-240", v)
		}
		c.FPS = fps
	}

	if v := getenv("SNAP_HISTORY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid SNAP_HISTORY %q", v)
		}
		c.History = n
	}

	level, err := parseLogLevel(envOr(getenv, "SNAP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// FrameInterval returns the time between two frames of the driver loop.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(s) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return 0, fmt.Errorf("invalid SNAP_LOG_LEVEL %q", s)
	}
}
