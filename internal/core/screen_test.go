package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative sizes should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render empty, got %q", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorBrightRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorBrightRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/bright red", c)
	}

	s.Set(4, 4, 'Y')
	if s.GetCell(4, 4).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("after Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorYellow)

	for i, ch := range "Hello" {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "a─b", ColorDefault)

	if s.Get(1, 0) != '─' || s.Get(2, 0) != 'b' {
		t.Errorf("runes should occupy one column each, got %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(0, 20, 2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}

	s.DrawTextCentered(10, 6, 3, "ab", ColorDefault)
	if s.Get(12, 3) != 'a' {
		t.Errorf("centering within a span failed, row = %q", s.Row(3))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box should use the given color")
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBox(NewRect(1, 1, 1, 3), ColorDefault)

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("degenerate box should draw nothing, got %q", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorRed)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorGreen)
	s.DrawText(0, 5, "World", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("colors should be preserved on resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(5) != strings.Repeat(" ", 15) {
		t.Errorf("rows cut by shrinking should come back blank, got %q", s.Row(5))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if s.Row(-1) != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
