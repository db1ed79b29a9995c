package snake

import (
	"github.com/vovakirdan/cnake/internal/config"
	"github.com/vovakirdan/cnake/internal/core"
)

// Geometry holds the pixel metrics used to turn a scene into primitives.
type Geometry struct {
	Unit  int // Pixel size of one cell
	Inset int // Margin trimmed from each unconnected side
}

// GeometryFrom builds a Geometry from render settings.
func GeometryFrom(rc config.RenderConfig) Geometry {
	return Geometry{Unit: rc.Unit, Inset: rc.Inset}
}

// sides marks the connected sides of a rect, indexed by Direction.
type sides [4]bool

// ComputeDrawPrimitives converts a scene into body, head and apple
// primitives. Straight runs of body cells are merged into a single rect
// inset on the perpendicular axis; corners are drawn per cell, open toward
// both neighbours; the head is open only toward its neck. The tail's back
// end is closed so the tail reads as an end cap.
func ComputeDrawPrimitives(sc Scene, geo Geometry) []core.Primitive {
	cells := sc.Snake.Positions()
	n := len(cells)
	prims := make([]core.Primitive, 0, n/2+2)

	// neighbour links for cell i: toward the tail and toward the head
	link := func(i, j int) (core.Direction, bool) {
		if j < 0 || j >= n {
			return 0, false
		}
		return core.DirectionBetween(cells[i], cells[j])
	}

	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		prims = append(prims, core.RectPrimitive(runRect(cells, runStart, end, geo), core.RoleBody))
		runStart = -1
	}

	for i := 0; i < n-1; i++ {
		back, hasBack := link(i, i-1)
		fwd, okFwd := link(i, i+1)

		straight := !hasBack || (okFwd && back == fwd.Opposite())
		if straight && okFwd {
			if runStart < 0 {
				runStart = i
			}
			continue
		}

		flush(i - 1)
		var open sides
		if hasBack {
			open[back] = true
		}
		if okFwd {
			open[fwd] = true
		}
		prims = append(prims, core.RectPrimitive(closeSides(core.CellRect(cells[i], geo.Unit), open, geo.Inset), core.RoleBody))
	}
	flush(n - 2)

	head := core.CellRect(cells[n-1], geo.Unit)
	var open sides
	if neck, ok := link(n-1, n-2); ok {
		open[neck] = true
	}
	prims = append(prims, core.RectPrimitive(closeSides(head, open, geo.Inset), core.RoleHead))

	if sc.HasApple {
		c := core.CellRect(sc.Apple, geo.Unit)
		cx, cy := c.Center()
		prims = append(prims, core.CirclePrimitive(core.Circle{X: cx, Y: cy, R: geo.Unit/2 - geo.Inset}, core.RoleApple))
	}

	return prims
}

// runRect merges cells[from..to], all on one axis, into one rect. The two
// sides parallel to the run are inset; the run's ends stay flush except at
// the tail.
func runRect(cells []core.Point, from, to int, geo Geometry) core.Rect {
	r := core.CellRect(cells[from], geo.Unit)
	for i := from + 1; i <= to; i++ {
		r = union(r, core.CellRect(cells[i], geo.Unit))
	}

	axis, _ := core.DirectionBetween(cells[from], cells[from+1])
	var open sides
	open[axis] = true
	if from > 0 {
		open[axis.Opposite()] = true
	}
	return closeSides(r, open, geo.Inset)
}

// closeSides insets r by m on every side not listed in open.
func closeSides(r core.Rect, open sides, m int) core.Rect {
	for d, connected := range open {
		if !connected {
			r = inset(r, core.Direction(d), m)
		}
	}
	return r
}

// inset trims m pixels off the side of r facing d.
func inset(r core.Rect, d core.Direction, m int) core.Rect {
	switch d {
	case core.DirRight:
		r.W -= m
	case core.DirLeft:
		r.X += m
		r.W -= m
	case core.DirDown:
		r.H -= m
	case core.DirUp:
		r.Y += m
		r.H -= m
	}
	return r
}

func union(a, b core.Rect) core.Rect {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	return core.Rect{X: x, Y: y, W: max(a.Right(), b.Right()) - x, H: max(a.Bottom(), b.Bottom()) - y}
}
