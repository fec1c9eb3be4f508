package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 4)
	if s.Width() != 10 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 10x4", s.Width(), s.Height())
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
	s.Set(5, 5, 'X', ColorRed)

	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", cell)
	}

	// Out of bounds must not panic
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "héllo", ColorGreen)

	if got := s.Row(1); got != "  héllo             " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(3, 1).Color != ColorGreen {
		t.Errorf("DrawText color = %v, expected green", s.GetCell(3, 1).Color)
	}

	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("DrawText should clip at the right edge")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorDefault)

	checks := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
		{3, 1, '─'},
		{1, 2, '│'},
		{3, 2, ' '},
	}
	for _, c := range checks {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("Get(%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
}

func TestScreenResizeAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorDefault)
	if s.String() != "a  \n   " {
		t.Errorf("String() = %q", s.String())
	}

	s.Resize(4, 1)
	if s.Width() != 4 || s.Height() != 1 {
		t.Errorf("Resize() size = %dx%d, expected 4x1", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear content")
	}
}
