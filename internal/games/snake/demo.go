package snake

import "github.com/vovakirdan/cnake/internal/core"

// demoStep moves the menu attract snake one cell. It keeps its heading until
// the next cell is off the board or occupied, then turns clockwise, which
// settles into a patrol of the board edge. The demo never grows or scores.
func (g *Game) demoStep() {
	s := g.scene.Snake

	dir, ok := g.demoHeading(s)
	if !ok {
		g.scene = g.newScene()
		return
	}

	s.direction = dir
	head, _ := s.Advance(dir.Vector())
	s.Unlock()

	if g.scene.HasApple && head == g.scene.Apple {
		g.scene.Apple, g.scene.HasApple = g.placeApple(s)
	}
}

// demoHeading returns the first safe heading, trying straight on, then a
// clockwise turn, then a counter-clockwise one. The tail's cell counts as
// free because it moves away this tick.
func (g *Game) demoHeading(s *Snake) (core.Direction, bool) {
	cur := s.Direction()
	for _, dir := range []core.Direction{cur, cur.Clockwise(), cur.Opposite().Clockwise()} {
		next := s.Head().Add(dir.Vector())
		if next.In(g.cfg.Grid.Width, g.cfg.Grid.Height) && (next == s.Tail() || !s.Contains(next)) {
			return dir, true
		}
	}
	return cur, false
}
