// Package snake implements the cnake simulation: the arena-backed snake body,
// apple placement, collision checks, the phase state machine and the
// segment-merging draw geometry.
package snake

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/cnake/internal/config"
	"github.com/vovakirdan/cnake/internal/core"
	"github.com/vovakirdan/cnake/internal/registry"
)

// Variant identifiers.
const (
	IDDefault = "snake"
	IDClassic = "snake_classic"
)

// Scene is the board content of one round. It is replaced wholesale on reset.
type Scene struct {
	Snake    *Snake
	Apple    core.Point
	HasApple bool // False once the board is saturated
}

// Clone returns a deep copy of the scene.
func (sc Scene) Clone() Scene {
	sc.Snake = sc.Snake.Clone()
	return sc
}

// Game is the authoritative game state. It is not safe for concurrent use;
// the host serializes input, Tick and Render.
type Game struct {
	id    string
	title string

	cfg        config.Config
	geometry   Geometry
	rng        *rand.Rand
	startPhase core.Phase

	phase   core.Phase
	scene   Scene
	score   uint
	tick    uint64
	cleared bool // Last round ended with a saturated board
	quit    bool
}

// Init validates cfg and creates a game in its configured start phase.
// A zero seed is replaced by the current time.
func Init(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, _ := core.ParsePhase(cfg.Game.StartPhase)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		id:         IDDefault,
		title:      "Cnake",
		cfg:        cfg,
		geometry:   GeometryFrom(cfg.Render),
		rng:        rand.New(rand.NewSource(seed)),
		startPhase: start,
		phase:      start,
	}
	g.scene = g.newScene()
	return g, nil
}

func init() {
	registry.Register(IDDefault, "Cnake", func(cfg config.Config) (registry.Game, error) {
		g, err := Init(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
	registry.Register(IDClassic, "Cnake (Classic)", func(cfg config.Config) (registry.Game, error) {
		cfg.Game.StartPhase = core.PhasePlaying.String()
		cfg.Game.Demo = false
		g, err := Init(cfg)
		if err != nil {
			return nil, err
		}
		g.id = IDClassic
		g.title = "Cnake (Classic)"
		return g, nil
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Dimensions returns the board size in cells and the pixel size of a cell.
func (g *Game) Dimensions() (cols, rows, unit int) {
	return g.cfg.Grid.Width, g.cfg.Grid.Height, g.geometry.Unit
}

// newScene spawns a fresh snake of the initial length and an apple.
func (g *Game) newScene() Scene {
	s := newLine(g.cfg.Snake.InitialLength, g.cfg.Snake.StartRow)
	sc := Scene{Snake: s}
	sc.Apple, sc.HasApple = g.placeApple(s)
	return sc
}

func (g *Game) placeApple(s *Snake) (core.Point, bool) {
	p, err := PlaceApple(s, g.cfg.Grid.Width, g.cfg.Grid.Height, g.rng, g.cfg.AppleAttempts())
	if errors.Is(err, ErrBoardSaturated) {
		return p, false
	}
	return p, true
}

// start begins a new round: fresh scene, zero score.
func (g *Game) start() {
	g.scene = g.newScene()
	g.score = 0
	g.cleared = false
	g.phase = core.PhasePlaying
}

// SetDirectionIntent requests a turn for the next move. It only applies while
// playing and follows the snake's one-turn-per-tick and no-reversal rules.
func (g *Game) SetDirectionIntent(d core.Direction) {
	if g.phase != core.PhasePlaying {
		return
	}
	g.scene.Snake.Turn(d)
}

// TogglePause switches between Playing and Paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case core.PhasePlaying:
		g.phase = core.PhasePaused
	case core.PhasePaused:
		g.phase = core.PhasePlaying
	}
}

// Confirm starts play from the menu, resumes from pause and restarts after
// game over.
func (g *Game) Confirm() {
	switch g.phase {
	case core.PhaseMenu, core.PhaseGameOver:
		g.start()
	case core.PhasePaused:
		g.phase = core.PhasePlaying
	}
}

// Quit requests termination from any phase except Playing.
func (g *Game) Quit() {
	if g.phase != core.PhasePlaying {
		g.quit = true
	}
}

// Tick advances the simulation by one fixed step.
func (g *Game) Tick() {
	g.tick++

	switch g.phase {
	case core.PhaseMenu:
		if g.cfg.Game.Demo {
			g.demoStep()
		}
	case core.PhasePlaying:
		g.step()
	}
}

// step is one Playing tick: move, eat, then check for death.
func (g *Game) step() {
	s := g.scene.Snake
	head, vacated := s.Advance(s.Direction().Vector())

	if g.scene.HasApple && head == g.scene.Apple {
		s.Grow(vacated)
		g.score++
		g.scene.Apple, g.scene.HasApple = g.placeApple(s)
	}

	switch {
	case OutOfBounds(s, g.cfg.Grid.Width, g.cfg.Grid.Height), SelfCollision(s):
		g.phase = core.PhaseGameOver
	case !g.scene.HasApple:
		// Nothing left to eat
		g.cleared = true
		g.phase = core.PhaseGameOver
	}

	s.Unlock()
}

// Score returns apples eaten this round.
func (g *Game) Score() uint {
	return g.score
}

// Phase returns the active phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// ShouldQuit reports whether the host should stop its loop.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// Cleared reports whether the last round ended because the snake filled the board.
func (g *Game) Cleared() bool {
	return g.cleared
}

// Scene returns the current scene. The snake is shared, not copied.
func (g *Game) Scene() Scene {
	return g.scene
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		Length:        g.scene.Snake.Len(),
		Phase:         g.phase,
		QuitRequested: g.quit,
	}
}
