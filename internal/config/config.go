// Package config loads optional game defaults from an HCL file. Command-line
// flags always take precedence over file values.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// GameConfig is the full configuration file.
type GameConfig struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// GameSettings configures who plays and how the game is seeded.
type GameSettings struct {
	Players int      `hcl:"players,optional"`
	Names   []string `hcl:"names,optional"`
	Seed    *int64   `hcl:"seed,optional"`
}

// UISettings configures the terminal front end.
type UISettings struct {
	AutoDelayMS int    `hcl:"auto_delay_ms,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	LogFile     string `hcl:"log_file,optional"`
	NoColor     bool   `hcl:"no_color,optional"`
}

// fileConfig mirrors GameConfig with optional blocks for decoding.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// Default returns the configuration used when no file is present.
func Default() *GameConfig {
	return &GameConfig{
		Game: GameSettings{
			Players: 1,
		},
		UI: UISettings{
			AutoDelayMS: 300,
			LogLevel:    "warn",
			LogFile:     "minibingo.log",
		},
	}
}

// Load reads an HCL config file. A missing file yields the defaults; absent
// blocks and attributes fall back to default values.
func Load(filename string) (*GameConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var parsed fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if parsed.Game != nil {
		if parsed.Game.Players != 0 {
			cfg.Game.Players = parsed.Game.Players
		}
		cfg.Game.Names = parsed.Game.Names
		cfg.Game.Seed = parsed.Game.Seed
	}
	if parsed.UI != nil {
		if parsed.UI.AutoDelayMS != 0 {
			cfg.UI.AutoDelayMS = parsed.UI.AutoDelayMS
		}
		if parsed.UI.LogLevel != "" {
			cfg.UI.LogLevel = parsed.UI.LogLevel
		}
		if parsed.UI.LogFile != "" {
			cfg.UI.LogFile = parsed.UI.LogFile
		}
		cfg.UI.NoColor = parsed.UI.NoColor
	}

	if cfg.Game.Players < 1 {
		return nil, fmt.Errorf("players must be >= 1, got %d", cfg.Game.Players)
	}
	if cfg.Game.Names != nil && len(cfg.Game.Names) != cfg.Game.Players {
		return nil, fmt.Errorf("got %d names for %d players", len(cfg.Game.Names), cfg.Game.Players)
	}
	return cfg, nil
}
