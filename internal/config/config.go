// Package config provides YAML-based configuration loading for the
// minesweeper terminal client.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// MinesConfig contains all client configuration.
type MinesConfig struct {
	Difficulty string      `yaml:"difficulty"` // beginner, intermediate, expert or custom
	Custom     CustomBoard `yaml:"custom"`
	Marks      bool        `yaml:"marks"` // enable the third ? state in the flag cycle
	Color      bool        `yaml:"color"`
	Sound      bool        `yaml:"sound"`
	Player     string      `yaml:"player"` // default name for the best-times table
	Database   string      `yaml:"database"`
}

// CustomBoard defines the board used when difficulty is set to custom.
type CustomBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// ResolveDifficulty maps the configured difficulty name to a board preset.
func (c MinesConfig) ResolveDifficulty() (mines.Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(c.Difficulty))
	if name == "" {
		name = "beginner"
	}
	if name == "custom" {
		d := mines.Custom(c.Custom.Width, c.Custom.Height, c.Custom.Mines)
		if err := d.Config().Validate(); err != nil {
			return mines.Difficulty{}, fmt.Errorf("invalid custom board: %w", err)
		}
		return d, nil
	}
	d, ok := mines.DifficultyByName(name)
	if !ok {
		return mines.Difficulty{}, fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}
	return d, nil
}

// Round resolves the configured difficulty into a game configuration with
// the marks option applied.
func (c MinesConfig) Round() (mines.Config, error) {
	d, err := c.ResolveDifficulty()
	if err != nil {
		return mines.Config{}, err
	}
	cfg := d.Config()
	cfg.Marks = c.Marks
	return cfg, nil
}
