package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cnake/internal/core"
	"github.com/vovakirdan/cnake/internal/registry"
)

// Options configures the host.
type Options struct {
	TickRate int // Simulation ticks per second
	Width    int // Initial terminal width, until the first resize
	Height   int // Initial terminal height, until the first resize
	Logger   *log.Logger
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int

	width, height int
	phase         core.Phase // Last phase seen, for transition logging
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: opts.TickRate,
		width:    opts.Width,
		height:   opts.Height,
		phase:    game.Phase(),
	}
	m.screen = core.NewScreen(m.boardArea())
	return m
}

// boardArea is the screen space left after the help footer.
func (m Model) boardArea() (w, h int) {
	return m.width, max(m.height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "id", m.game.ID(), "phase", m.phase, "rate", m.tickRate)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(m.boardArea())
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.game.Tick()
		return m.observe(tickCmd(m.tickRate))
	}

	return m, nil
}

// handleKey applies a key press to the game immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.logger.Info("force quit", "phase", m.game.Phase())
		m.quitting = true
		return m, tea.Quit
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.game.SetDirectionIntent(d)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()
	case key.Matches(msg, m.keys.Confirm):
		m.game.Confirm()
	case key.Matches(msg, m.keys.Space):
		if m.game.Phase() == core.PhasePlaying {
			m.game.TogglePause()
		} else {
			m.game.Confirm()
		}
	case key.Matches(msg, m.keys.Quit):
		m.game.Quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m.observe(nil)
}

// observe logs phase transitions and stops the program once the game asks
// to quit. next is returned when the game keeps running.
func (m Model) observe(next tea.Cmd) (tea.Model, tea.Cmd) {
	if phase := m.game.Phase(); phase != m.phase {
		m.logger.Debug("phase changed", "from", m.phase, "to", phase)
		if phase == core.PhaseGameOver {
			st := m.game.State()
			m.logger.Info("round over", "score", st.Score, "length", st.Length)
		}
		m.phase = phase
	}

	if m.game.ShouldQuit() {
		m.logger.Info("quit", "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	}
	return m, next
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows, unit := m.game.Dimensions()
	vp, ok := core.NewViewport(cols, rows, unit, m.screen.Width(), m.screen.Height())
	if !ok {
		needW, needH := core.MinScreenSize(cols, rows)
		return renderTooSmall(m.width, m.height, needW, needH+1)
	}

	m.screen.Clear()
	core.Rasterize(m.screen, m.game.Render(), vp)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
