package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(NewRect(0, 0, 4, 4), '#')
	s.SetColor(1, 1, '*', ColorBlue)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(1, 0, "★■▲", ColorYellow)

	want := []rune{'★', '■', '▲'}
	for i, r := range want {
		cell := s.GetCell(1+i, 0)
		if cell.Rune != r || cell.Color != ColorYellow {
			t.Errorf("cell %d = %+v, expected yellow %q", i, cell, r)
		}
	}
	if s.Get(4, 0) != ' ' {
		t.Error("multibyte text should occupy one cell per rune")
	}

	// Text should be clipped at boundaries
	s.DrawText(8, 1, "Hello")
	if s.Get(8, 1) != 'H' || s.Get(9, 1) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGreen)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		cell := s.GetCell(pos[0], pos[1])
		if cell.Rune != want || cell.Color != ColorGreen {
			t.Errorf("corner at %v = %+v, expected green %q", pos, cell, want)
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
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColor(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); row != strings.Repeat(" ", 8) {
		t.Errorf("Resize should clear content, row 0 = %q", row)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
