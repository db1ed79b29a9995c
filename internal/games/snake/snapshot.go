package snake

import "github.com/vovakirdan/cnake/internal/core"

// Snapshot is a point-in-time copy of the observable game state.
type Snapshot struct {
	Tick     uint64         `yaml:"tick"`
	Phase    string         `yaml:"phase"`
	Score    uint           `yaml:"score"`
	Length   int            `yaml:"length"`
	Head     core.Point     `yaml:"head"`
	Dir      core.Direction `yaml:"-"`
	Heading  string         `yaml:"direction"`
	Apple    core.Point     `yaml:"apple"`
	HasApple bool           `yaml:"has_apple"`
	Locked   bool           `yaml:"locked"`
	Body     []core.Point   `yaml:"body"`
}

// Snapshot captures the game state. The result shares nothing with the game.
func (g *Game) Snapshot() Snapshot {
	s := g.scene.Snake
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.String(),
		Score:    g.score,
		Length:   s.Len(),
		Head:     s.Head(),
		Dir:      s.Direction(),
		Heading:  s.Direction().String(),
		Apple:    g.scene.Apple,
		HasApple: g.scene.HasApple,
		Locked:   s.Locked(),
		Body:     s.Positions(),
	}
}
