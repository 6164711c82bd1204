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
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
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

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColored(1, 0, '█', ColorRed)

	cell := s.GetCell(1, 0)
	if cell.Rune != '█' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 0) = %+v, expected red block", cell)
	}

	s.Clear()
	if s.GetCell(1, 0).Color != ColorDefault {
		t.Error("Clear should reset colours")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	// Clipped at the edge
	s.DrawText(17, 0, "World")
	if got := s.Row(0); !strings.HasSuffix(got, "Wor") {
		t.Errorf("Row(0) = %q, expected clipped suffix %q", got, "Wor")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected %q", got, "    abc    ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box corners should carry the box colour")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), '#')

	expected := "    \n ## \n ## \n    "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 2)

	if got := s.Bounds(); got != NewRect(0, 0, 4, 2) {
		t.Errorf("Bounds() = %+v, expected 4x2 at origin", got)
	}

	s.Set(3, 1, 'x')
	s.Set(4, 1, 'y') // Outside, ignored
	if got := s.Row(1); got != "   x" {
		t.Errorf("Row(1) = %q, expected %q", got, "   x")
	}
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("GetCell(-1, 0) = %+v, expected a blank cell", got)
	}
}
