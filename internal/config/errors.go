package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigurationError reports a single invalid setting. It is fatal to startup.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the configuration and returns the first problem found.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0:
		return invalid("grid.width", "must be positive, got %d", c.Grid.Width)
	case c.Grid.Height <= 0:
		return invalid("grid.height", "must be positive, got %d", c.Grid.Height)
	case c.Snake.InitialLength < 3:
		return invalid("snake.initial_length", "must be at least 3, got %d", c.Snake.InitialLength)
	case c.Snake.InitialLength > c.Grid.Width:
		return invalid("snake.initial_length", "%d does not fit a board %d cells wide",
			c.Snake.InitialLength, c.Grid.Width)
	case c.Snake.InitialLength >= c.Cells():
		return invalid("snake.initial_length", "leaves no free cell for an apple")
	case c.Snake.StartRow < 0 || c.Snake.StartRow >= c.Grid.Height:
		return invalid("snake.start_row", "%d is outside [0,%d)", c.Snake.StartRow, c.Grid.Height)
	case c.Tick.Rate <= 0:
		return invalid("tick.rate", "must be positive, got %d", c.Tick.Rate)
	case c.Game.StartPhase != "menu" && c.Game.StartPhase != "playing":
		return invalid("game.start_phase", "must be \"menu\" or \"playing\", got %q", c.Game.StartPhase)
	case c.Apple.MaxAttempts < 0:
		return invalid("apple.max_attempts", "must not be negative, got %d", c.Apple.MaxAttempts)
	case c.Render.Unit <= 0:
		return invalid("render.unit", "must be positive, got %d", c.Render.Unit)
	case c.Render.Inset < 0 || 2*c.Render.Inset >= c.Render.Unit:
		return invalid("render.inset", "%d must be in [0,%d)", c.Render.Inset, (c.Render.Unit+1)/2)
	}
	return nil
}
