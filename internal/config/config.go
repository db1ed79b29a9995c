// Package config provides YAML-based configuration loading and validation
// for the cnake game.
package config

// Config contains all configuration for a cnake session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Tick   TickConfig   `yaml:"tick"`
	Game   GameConfig   `yaml:"game"`
	Apple  AppleConfig  `yaml:"apple"`
	Render RenderConfig `yaml:"render"`
	Seed   int64        `yaml:"seed"` // 0 means seed from the clock
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the snake spawned at the start of every round.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"` // Must be >= 3
	StartRow      int `yaml:"start_row"`      // Row of the initial horizontal body
}

// TickConfig defines the fixed simulation rate.
type TickConfig struct {
	Rate int `yaml:"rate"` // Ticks per second
}

// GameConfig defines phase machine behavior.
type GameConfig struct {
	StartPhase string `yaml:"start_phase"` // "menu" or "playing"
	Demo       bool   `yaml:"demo"`        // Patrol demo while in the menu
}

// AppleConfig defines apple placement.
type AppleConfig struct {
	// MaxAttempts bounds rejection sampling before falling back to a scan of
	// free cells. 0 means four times the number of cells.
	MaxAttempts int `yaml:"max_attempts"`
}

// RenderConfig defines draw geometry in pixel units.
type RenderConfig struct {
	Unit  int `yaml:"unit"`  // Pixel size of one grid cell
	Inset int `yaml:"inset"` // Gap left between parallel body runs
}

// Cells returns the number of cells on the board.
func (c Config) Cells() int {
	return c.Grid.Width * c.Grid.Height
}

// AppleAttempts returns the effective rejection-sampling bound.
func (c Config) AppleAttempts() int {
	if c.Apple.MaxAttempts > 0 {
		return c.Apple.MaxAttempts
	}
	return 4 * c.Cells()
}
