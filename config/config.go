// Package config loads the optional settings file and watches it for
// live changes. The file seeds the same tunables the number keys mutate
// at runtime; a missing file is created with defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/serpent/constant"
	"github.com/lixenwraith/serpent/core"
)

// Config mirrors the settings file on disk.
type Config struct {
	BoardWidth  int    `json:"board_width"`
	BoardHeight int    `json:"board_height"`
	TickDelayMs int    `json:"tick_delay_ms"`
	SnakeStyle  string `json:"snake_style"` // curved, sharp, block
	AppleStyle  string `json:"apple_style"` // ring, solid, glyph
	Wrap        bool   `json:"wrap"`
	Color       bool   `json:"color"`
	Sound       bool   `json:"sound"`
}

// Default returns the reference game settings.
func Default() Config {
	return Config{
		BoardWidth:  constant.DefaultBoardWidth,
		BoardHeight: constant.DefaultBoardHeight,
		TickDelayMs: int(constant.DefaultTickDelay / time.Millisecond),
		SnakeStyle:  "curved",
		AppleStyle:  "ring",
		Wrap:        false,
		Color:       true,
		Sound:       true,
	}
}

// Load reads the settings file, creating it with defaults when absent.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config read: %w", err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config parse: %w", err)
	}
	return cfg.Clamped(), nil
}

// Save writes the settings file.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config encode: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}

// Clamped normalizes out-of-range values to the same limits live
// mutation enforces.
func (c Config) Clamped() Config {
	c.BoardWidth = max(c.BoardWidth, constant.MinBoardDim)
	c.BoardHeight = max(c.BoardHeight, constant.MinBoardDim)
	c.TickDelayMs = max(c.TickDelayMs, int(constant.MinTickDelay/time.Millisecond))
	return c
}

// TickDelay returns the delay as a duration.
func (c Config) TickDelay() time.Duration {
	return time.Duration(c.TickDelayMs) * time.Millisecond
}

// ParsedSnakeStyle maps the file value to a style, defaulting to curved.
func (c Config) ParsedSnakeStyle() core.SnakeStyle {
	switch c.SnakeStyle {
	case "sharp":
		return core.StyleSharpLine
	case "block":
		return core.StyleBlock
	default:
		return core.StyleCurvedLine
	}
}

// ParsedAppleStyle maps the file value to a style, defaulting to ring.
func (c Config) ParsedAppleStyle() core.AppleStyle {
	switch c.AppleStyle {
	case "solid":
		return core.AppleSolid
	case "glyph":
		return core.AppleGlyph
	default:
		return core.AppleRing
	}
}
