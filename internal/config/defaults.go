package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 30,
		},
		Snake: SnakeConfig{
			InitialLength: 5,
			StartRow:      0,
		},
		Tick: TickConfig{
			Rate: 10,
		},
		Game: GameConfig{
			StartPhase: "menu",
			Demo:       true,
		},
		Render: RenderConfig{
			Unit:  30,
			Inset: 1,
		},
	}
}

// Classic returns the default configuration of the simplest variant: no menu,
// play starts immediately.
func Classic() Config {
	cfg := Default()
	cfg.Game.StartPhase = "playing"
	cfg.Game.Demo = false
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
