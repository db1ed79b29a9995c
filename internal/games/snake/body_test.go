package snake

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/cnake/internal/core"
)

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestNewSnake(t *testing.T) {
	tests := []struct {
		name    string
		cells   []core.Point
		wantErr bool
		wantDir core.Direction
	}{
		{"horizontal", pts(0, 0, 1, 0, 2, 0), false, core.DirRight},
		{"bent up", pts(0, 2, 0, 1, 1, 1, 1, 0), false, core.DirUp},
		{"too short", pts(0, 0, 1, 0), true, 0},
		{"gap", pts(0, 0, 1, 0, 3, 0), true, 0},
		{"diagonal", pts(0, 0, 1, 1, 2, 2), true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSnake(tc.cells)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSnake: %v", err)
			}
			if s.Direction() != tc.wantDir {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), tc.wantDir)
			}
			if !slices.Equal(s.Positions(), tc.cells) {
				t.Errorf("Positions() = %v, expected %v", s.Positions(), tc.cells)
			}
			if err := s.checkChain(); err != nil {
				t.Error(err)
			}
		})
	}

	if _, err := NewSnake(pts(0, 0)); !errors.Is(err, ErrShortBody) {
		t.Errorf("short body error = %v, expected ErrShortBody", err)
	}
}

func TestAdvanceRecyclesTail(t *testing.T) {
	s := newLine(3, 0) // (0,0) (1,0) (2,0)

	head, vacated := s.Advance(core.DirRight.Vector())
	if head != (core.Point{X: 3}) || vacated != (core.Point{}) {
		t.Fatalf("Advance = %v, %v; expected (3,0), (0,0)", head, vacated)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d after Advance, expected 3", s.Len())
	}
	if s.Tail() != (core.Point{X: 1}) || s.Head() != head {
		t.Errorf("tail/head = %v/%v", s.Tail(), s.Head())
	}
	if cap(s.segments) != 3 {
		t.Errorf("Advance grew the arena to cap %d", cap(s.segments))
	}
	if err := s.checkChain(); err != nil {
		t.Error(err)
	}
}

func TestGrowRestoresVacatedCell(t *testing.T) {
	s := newLine(3, 0)
	_, vacated := s.Advance(core.DirRight.Vector())
	s.Grow(vacated)

	want := pts(0, 0, 1, 0, 2, 0, 3, 0)
	if !slices.Equal(s.Positions(), want) {
		t.Errorf("Positions() = %v, expected %v", s.Positions(), want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", s.Len())
	}
	if err := s.checkChain(); err != nil {
		t.Error(err)
	}

	// Keep moving and growing; the chain must always reach the head.
	dirs := []core.Direction{core.DirDown, core.DirDown, core.DirLeft, core.DirLeft, core.DirUp}
	for i, d := range dirs {
		_, v := s.Advance(d.Vector())
		if i%2 == 0 {
			s.Grow(v)
		}
		if err := s.checkChain(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if s.Len() != 7 {
		t.Errorf("Len() = %d, expected 7", s.Len())
	}
}

func TestTurn(t *testing.T) {
	tests := []struct {
		name   string
		dir    core.Direction
		accept bool
	}{
		{"perpendicular down", core.DirDown, true},
		{"perpendicular up", core.DirUp, true},
		{"reverse", core.DirLeft, false},
		{"same heading", core.DirRight, false},
		{"invalid", core.Direction(7), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newLine(3, 1)
			if got := s.Turn(tc.dir); got != tc.accept {
				t.Fatalf("Turn(%v) = %v, expected %v", tc.dir, got, tc.accept)
			}
			if s.Locked() != tc.accept {
				t.Errorf("Locked() = %v, expected %v", s.Locked(), tc.accept)
			}
		})
	}
}

func TestTurnLockHoldsUntilUnlock(t *testing.T) {
	s := newLine(3, 1)
	if !s.Turn(core.DirDown) {
		t.Fatal("first turn rejected")
	}
	// Left would fold back over the neck if it were applied before moving.
	if s.Turn(core.DirLeft) {
		t.Fatal("second turn in the same tick accepted")
	}
	if s.Direction() != core.DirDown {
		t.Errorf("Direction() = %v, expected down", s.Direction())
	}

	s.Advance(s.Direction().Vector())
	s.Unlock()
	if !s.Turn(core.DirLeft) {
		t.Error("turn after unlock rejected")
	}
}

func TestIntersects(t *testing.T) {
	s := newLine(4, 0)
	head := s.Head()

	if !s.Contains(head) {
		t.Error("Contains(head) = false")
	}
	if s.Intersects(head, true) {
		t.Error("Intersects(head, excludingHead) = true")
	}
	if !s.Intersects(core.Point{}, true) {
		t.Error("Intersects(tail, excludingHead) = false")
	}
	if s.Contains(core.Point{X: 4}) {
		t.Error("Contains(cell ahead) = true")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := newLine(3, 0)
	c := s.Clone()
	c.Advance(core.DirRight.Vector())
	c.Grow(core.Point{})

	if s.Len() != 3 || s.Head() != (core.Point{X: 2}) {
		t.Errorf("original changed: len %d head %v", s.Len(), s.Head())
	}
}

func TestAllStopsEarly(t *testing.T) {
	s := newLine(5, 0)
	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d cells, expected 2", n)
	}
}
