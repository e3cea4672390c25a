package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the default client configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Difficulty: "beginner",
		Custom: CustomBoard{
			Width:  16,
			Height: 16,
			Mines:  40,
		},
		Marks:  true,
		Color:  true,
		Sound:  true,
		Player: "Anonymous",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
