package snake

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vovakirdan/cnake/internal/core"
)

// MinLength is the shortest snake the body store supports.
const MinLength = 3

// noSegment terminates the chain at the head.
const noSegment = -1

// ErrShortBody is returned when a snake would have fewer than MinLength cells.
var ErrShortBody = errors.New("snake: body needs at least 3 cells")

// segment is one body cell. next is the arena index of the segment one step
// closer to the head.
type segment struct {
	pos  core.Point
	next int
}

// Snake is the body store: an arena of segments linked tail to head by
// integer handles. Segments are never freed individually, so the arena
// length is the snake length.
type Snake struct {
	segments []segment
	tail     int
	head     int

	direction core.Direction
	locked    bool // A turn was accepted this tick
}

// NewSnake builds a snake from cells ordered tail to head. Consecutive
// cells must be orthogonally adjacent. The initial heading continues the
// neck-to-head step.
func NewSnake(cells []core.Point) (*Snake, error) {
	if len(cells) < MinLength {
		return nil, fmt.Errorf("%w, got %d", ErrShortBody, len(cells))
	}

	s := &Snake{
		segments: make([]segment, len(cells)),
		tail:     0,
		head:     len(cells) - 1,
	}
	for i, p := range cells {
		if i > 0 {
			if _, ok := core.DirectionBetween(cells[i-1], p); !ok {
				return nil, fmt.Errorf("snake: cells %v and %v are not adjacent", cells[i-1], p)
			}
		}
		s.segments[i] = segment{pos: p, next: i + 1}
	}
	s.segments[s.head].next = noSegment

	s.direction, _ = core.DirectionBetween(cells[len(cells)-2], cells[len(cells)-1])
	return s, nil
}

// newLine builds a horizontal snake with its tail at (0, row), heading right.
func newLine(length, row int) *Snake {
	cells := make([]core.Point, length)
	for i := range cells {
		cells[i] = core.Point{X: i, Y: row}
	}
	s, err := NewSnake(cells)
	if err != nil {
		panic(err) // length is validated by config
	}
	return s
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.segments[s.head].pos
}

// Tail returns the tail cell.
func (s *Snake) Tail() core.Point {
	return s.segments[s.tail].pos
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Locked reports whether a turn has already been accepted this tick.
func (s *Snake) Locked() bool {
	return s.locked
}

// Turn requests a new heading. At most one turn is accepted per tick;
// reversals and repeats of the current heading are ignored without taking
// the lock.
func (s *Snake) Turn(d core.Direction) bool {
	if s.locked || !d.Valid() || d == s.direction || d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	s.locked = true
	return true
}

// Unlock clears the per-tick turn lock.
func (s *Snake) Unlock() {
	s.locked = false
}

// Advance moves the snake one cell by recycling the tail segment as the new
// head at oldHead+dir. It returns the new head and the cell the tail vacated.
func (s *Snake) Advance(dir core.Point) (head, vacated core.Point) {
	t := s.tail
	vacated = s.segments[t].pos
	head = s.segments[s.head].pos.Add(dir)

	s.tail = s.segments[t].next
	s.segments[t].next = noSegment
	s.segments[s.head].next = t
	s.head = t
	s.segments[t].pos = head

	return head, vacated
}

// Grow inserts a fresh segment behind the tail at the given cell. Call it
// with the vacated cell of the preceding Advance to undo the tail's move.
func (s *Snake) Grow(at core.Point) {
	s.segments = append(s.segments, segment{pos: at, next: s.tail})
	s.tail = len(s.segments) - 1
}

// All iterates body cells from tail to head.
func (s *Snake) All() iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		for i := s.tail; i != noSegment; i = s.segments[i].next {
			if !yield(s.segments[i].pos) {
				return
			}
		}
	}
}

// Positions returns a copy of the body cells from tail to head.
func (s *Snake) Positions() []core.Point {
	out := make([]core.Point, 0, len(s.segments))
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}

// Contains reports whether any body cell, head included, occupies p.
func (s *Snake) Contains(p core.Point) bool {
	return s.Intersects(p, false)
}

// Intersects reports whether a body cell occupies p. With excludingHead
// the walk stops before the head, so the head's own cell never matches.
func (s *Snake) Intersects(p core.Point, excludingHead bool) bool {
	for i := s.tail; i != noSegment; i = s.segments[i].next {
		if excludingHead && i == s.head {
			break
		}
		if s.segments[i].pos == p {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the snake.
func (s *Snake) Clone() *Snake {
	c := *s
	c.segments = append([]segment(nil), s.segments...)
	return &c
}

// checkChain verifies that walking from the tail visits every segment once
// and ends at the head.
func (s *Snake) checkChain() error {
	seen := 0
	i := s.tail
	for ; seen < len(s.segments); seen++ {
		if i == s.head {
			break
		}
		i = s.segments[i].next
		if i == noSegment {
			return fmt.Errorf("snake: chain ends after %d segments, length %d", seen+1, len(s.segments))
		}
	}
	if i != s.head || seen != len(s.segments)-1 {
		return fmt.Errorf("snake: head reached after %d steps, length %d", seen, len(s.segments))
	}
	if s.segments[s.head].next != noSegment {
		return errors.New("snake: head links onward")
	}
	return nil
}
