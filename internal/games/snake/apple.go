package snake

import (
	"errors"

	"github.com/vovakirdan/cnake/internal/core"
)

// ErrBoardSaturated means the snake covers every cell and no apple can be placed.
var ErrBoardSaturated = errors.New("snake: board saturated, no free cell for an apple")

// Rand is the subset of *rand.Rand used for placement.
type Rand interface {
	Intn(n int) int
}

// PlaceApple picks a uniformly random cell of the w x h board not covered by
// the snake. It samples up to maxAttempts times, then falls back to choosing
// among the remaining free cells so a nearly full board still terminates.
func PlaceApple(s *Snake, w, h int, rng Rand, maxAttempts int) (core.Point, error) {
	for range maxAttempts {
		p := core.Point{X: rng.Intn(w), Y: rng.Intn(h)}
		if !s.Contains(p) {
			return p, nil
		}
	}

	free := freeCells(s, w, h)
	if len(free) == 0 {
		return core.Point{X: -1, Y: -1}, ErrBoardSaturated
	}
	return free[rng.Intn(len(free))], nil
}

// freeCells lists unoccupied cells in row-major order.
func freeCells(s *Snake, w, h int) []core.Point {
	occupied := make(map[core.Point]bool, s.Len())
	for p := range s.All() {
		occupied[p] = true
	}

	free := make([]core.Point, 0, max(w*h-s.Len(), 0))
	for y := range h {
		for x := range w {
			p := core.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}
