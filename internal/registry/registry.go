// Package registry provides a global registry for cnake variant factories.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cnake/internal/config"
	"github.com/vovakirdan/cnake/internal/core"
)

// ErrUnknownVariant is returned by Create for an unregistered id.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is the external interface of a running simulation.
// Implementations contain pure logic with no Bubble Tea dependency.
// The platform handles key mapping, timing, and rasterizing.
type Game interface {
	// ID returns the variant identifier (e.g., "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Dimensions returns the board size in cells and the pixel size of one cell.
	Dimensions() (cols, rows, unit int)

	// SetDirectionIntent requests a heading for the next move.
	SetDirectionIntent(d core.Direction)

	TogglePause()
	Confirm()
	Quit()

	// Tick advances the simulation by one fixed step.
	Tick()

	// Render returns the draw primitives for the current phase.
	Render() []core.Primitive

	Score() uint
	Phase() core.Phase
	ShouldQuit() bool

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game from a configuration.
type Factory func(cfg config.Config) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
func Create(id string, cfg config.Config) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}

	g, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
