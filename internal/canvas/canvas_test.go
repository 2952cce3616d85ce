package canvas

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	c := New(80, 24)

	if c.Width() != 80 || c.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", c.Width(), c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Get(x, y) != blank {
				t.Fatalf("New canvas should be blank, got %+v at (%d, %d)", c.Get(x, y), x, y)
			}
		}
	}

	if empty := New(-3, -1); empty.Width() != 0 || empty.Height() != 0 || empty.String() != "" {
		t.Errorf("negative size should give an empty canvas")
	}
}

func TestSetGet(t *testing.T) {
	c := New(10, 10)

	c.Set(5, 5, 'X', ColorDamaged)
	if got := c.Get(5, 5); got.Rune != 'X' || got.Color != ColorDamaged {
		t.Errorf("Get(5, 5) = %+v", got)
	}

	// Out of bounds should be silent
	c.Set(-1, 0, 'A', ColorLabel)
	c.Set(100, 0, 'A', ColorLabel)
	c.Set(0, -1, 'A', ColorLabel)
	c.Set(0, 100, 'A', ColorLabel)

	if c.Get(-1, 0) != blank || c.Get(100, 0) != blank {
		t.Error("Out of bounds Get should return a blank cell")
	}
}

func TestClearAndResize(t *testing.T) {
	c := New(10, 4)
	c.Text(0, 0, "Hello", ColorLabel)

	c.Clear()
	if strings.TrimSpace(c.String()) != "" {
		t.Errorf("Clear() left content: %q", c.String())
	}

	c.Text(0, 0, "Hello", ColorLabel)
	c.Resize(10, 4)
	if c.Row(0) != strings.Repeat(" ", 10) {
		t.Errorf("Resize() to the same size should clear, row 0 = %q", c.Row(0))
	}

	c.Resize(15, 8)
	if c.Width() != 15 || c.Height() != 8 || c.Get(14, 7) != blank {
		t.Errorf("After resize, got %dx%d", c.Width(), c.Height())
	}
}

func TestText(t *testing.T) {
	c := New(10, 3)
	c.Text(7, 1, "Boston", ColorLabel)

	if got := c.Row(1); got != "       Bos" {
		t.Errorf("clipped row = %q", got)
	}
	if c.Get(8, 1).Color != ColorLabel {
		t.Error("text color not applied")
	}

	c.Text(0, 2, "São", ColorDefault)
	if c.Get(2, 2).Rune != 'o' {
		t.Errorf("multi-byte text misplaced: %q", c.Row(2))
	}
}

func TestTextCentered(t *testing.T) {
	c := New(11, 1)
	c.TextCentered(0, "Ended", ColorHighlight)

	if got := c.Row(0); got != "   Ended   " {
		t.Errorf("centered row = %q", got)
	}
}

func TestFits(t *testing.T) {
	c := New(10, 2)
	c.Set(5, 0, '*', ColorDamaged)

	tests := []struct {
		x, y int
		text string
		want bool
	}{
		{0, 0, "abc", true},
		{3, 0, "abc", false}, // overlaps the marker
		{6, 0, "abcd", true},
		{7, 0, "abcd", false}, // runs off the edge
		{0, 1, "", false},
		{-1, 1, "ab", false},
		{0, 2, "ab", false},
	}

	for _, tc := range tests {
		if got := c.Fits(tc.x, tc.y, tc.text); got != tc.want {
			t.Errorf("Fits(%d, %d, %q) = %v, want %v", tc.x, tc.y, tc.text, got, tc.want)
		}
	}
}

func TestBox(t *testing.T) {
	c := New(10, 10)
	c.Box(NewRect(1, 1, 5, 4), ColorBorder)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := c.Get(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if c.Get(x, 1).Rune != '─' || c.Get(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if c.Get(1, y).Rune != '│' || c.Get(5, y).Rune != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if c.Get(1, 1).Color != ColorBorder {
		t.Error("box color not applied")
	}

	tiny := New(3, 3)
	tiny.Box(NewRect(0, 0, 1, 1), ColorBorder)
	if tiny.Get(0, 0) != blank {
		t.Error("a box smaller than 2x2 should not be drawn")
	}
}

func TestString(t *testing.T) {
	c := New(5, 3)
	c.Text(0, 0, "AAAAA", ColorDefault)
	c.Text(0, 1, "BBBBB", ColorDamaged)
	c.Text(0, 2, "CCCCC", ColorRestored)

	if got, want := c.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if got := c.Row(-1); got != "     " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
