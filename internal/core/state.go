package core

// Phase is the current mode of a game. Exactly one is active at a time.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ParsePhase converts a configuration string to a start phase.
// Only "menu" and "playing" are valid starting points.
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "menu":
		return PhaseMenu, true
	case "playing":
		return PhasePlaying, true
	}
	return 0, false
}

// GameState is the read-only summary a host polls after each tick.
type GameState struct {
	Score         uint  // Apples eaten this round
	Length        int   // Snake length
	Phase         Phase // Active phase
	QuitRequested bool  // Host should stop its loop
}
