package core

// Direction is one of the four grid headings.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the one-cell (dx, dy) step for the direction. y grows downward.
func (d Direction) Vector() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Clockwise returns the heading after a 90 degree right turn.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "up", "down", "left", "right" (or their first
// letter) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "u":
		return DirUp, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	case "right", "r":
		return DirRight, true
	}
	return 0, false
}

// DirectionBetween returns the heading of the unit step from a to b.
// ok is false when b is not orthogonally adjacent to a.
func DirectionBetween(a, b Point) (d Direction, ok bool) {
	switch (Point{X: b.X - a.X, Y: b.Y - a.Y}) {
	case Point{X: 1}:
		return DirRight, true
	case Point{Y: 1}:
		return DirDown, true
	case Point{X: -1}:
		return DirLeft, true
	case Point{Y: -1}:
		return DirUp, true
	}
	return 0, false
}
