package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	s.Set(-1, 0, 'A')
	s.Set(4, 0, 'A')
	s.Set(0, 4, 'A')

	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds Set should be ignored")
	}
	if s.Get(-1, -1) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '@', ColorRed)

	c := s.GetCell(1, 2)
	if c.Rune != '@' || c.Color != ColorRed {
		t.Errorf("GetCell = %+v, expected '@' red", c)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Set(3, 3, 'Y')

	s.Resize(2, 2)
	if s.Get(1, 1) != 'X' {
		t.Error("content inside new bounds should survive resize")
	}

	s.Resize(5, 5)
	if s.Get(3, 3) != ' ' {
		t.Error("content clipped by a shrink should not reappear")
	}
	if s.Get(1, 1) != 'X' {
		t.Error("content should survive growing")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox produced\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "   abc   " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}
