package snake

import (
	"testing"

	"github.com/vovakirdan/cnake/internal/core"
)

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		cells []core.Point
		want  bool
	}{
		{"inside", pts(0, 0, 1, 0, 2, 0), false},
		{"right edge cell", pts(2, 0, 3, 0, 4, 0), false},
		{"past right", pts(3, 0, 4, 0, 5, 0), true},
		{"past left", pts(1, 0, 0, 0, -1, 0), true},
		{"past top", pts(0, 1, 0, 0, 0, -1), true},
		{"past bottom", pts(0, 3, 0, 4, 0, 5), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSnake(tc.cells)
			if err != nil {
				t.Fatal(err)
			}
			if got := OutOfBounds(s, 5, 5); got != tc.want {
				t.Errorf("OutOfBounds = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	s, _ := NewSnake(pts(1, 0, 1, 1, 0, 1, 0, 0, 1, 0))
	if !SelfCollision(s) {
		t.Error("head on the tail cell not detected")
	}

	s = newLine(5, 0)
	if SelfCollision(s) {
		t.Error("straight snake reported a self collision")
	}
}
