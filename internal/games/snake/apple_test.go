package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/cnake/internal/core"
)

// scriptedRand replays fixed values, then repeats the last one.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v % n
}

func TestPlaceAppleAvoidsBody(t *testing.T) {
	s := newLine(5, 0)
	rng := rand.New(rand.NewSource(7))

	for range 500 {
		p, err := PlaceApple(s, 6, 2, rng, 24)
		if err != nil {
			t.Fatalf("PlaceApple: %v", err)
		}
		if !p.In(6, 2) {
			t.Fatalf("apple %v off the board", p)
		}
		if s.Contains(p) {
			t.Fatalf("apple %v placed on the snake", p)
		}
	}
}

func TestPlaceAppleRejectionSampling(t *testing.T) {
	s := newLine(3, 0)
	// First sample (1,0) hits the body, second (4,2) is free.
	rng := &scriptedRand{vals: []int{1, 0, 4, 2}}

	p, err := PlaceApple(s, 10, 10, rng, 10)
	if err != nil {
		t.Fatalf("PlaceApple: %v", err)
	}
	if p != (core.Point{X: 4, Y: 2}) {
		t.Errorf("PlaceApple = %v, expected (4,2)", p)
	}
}

func TestPlaceAppleFallsBackToFreeScan(t *testing.T) {
	s := newLine(3, 0)
	// Sampling always lands on (0,0); the fallback picks free cell index 0.
	rng := &scriptedRand{vals: []int{0}}

	p, err := PlaceApple(s, 4, 1, rng, 5)
	if err != nil {
		t.Fatalf("PlaceApple: %v", err)
	}
	if p != (core.Point{X: 3}) {
		t.Errorf("PlaceApple = %v, expected the only free cell (3,0)", p)
	}
}

func TestPlaceAppleSaturated(t *testing.T) {
	s := newLine(3, 0)
	_, err := PlaceApple(s, 3, 1, rand.New(rand.NewSource(1)), 8)
	if !errors.Is(err, ErrBoardSaturated) {
		t.Errorf("error = %v, expected ErrBoardSaturated", err)
	}
}

func TestFreeCellsRowMajor(t *testing.T) {
	s := newLine(3, 0)
	got := freeCells(s, 3, 2)
	want := pts(0, 1, 1, 1, 2, 1)
	if len(got) != len(want) {
		t.Fatalf("freeCells = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("freeCells[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}
