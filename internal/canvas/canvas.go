// Package canvas provides a colored character buffer and a lat/lon
// projection for drawing the city map. It has no terminal dependencies;
// the TUI turns a Canvas into styled text.
package canvas

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Canvas is a 2D grid of cells.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a blank canvas with the given dimensions.
// Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in characters.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas area as a rectangle at the origin.
func (c *Canvas) Bounds() Rect { return NewRect(0, 0, c.width, c.height) }

// Resize changes the canvas dimensions and clears it.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		c.Clear()
		return
	}
	c.width, c.height = width, height
	c.allocate()
	c.Clear()
}

// Clear fills the canvas with uncolored spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if !c.Bounds().Contains(x, y) {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position, or a blank cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.Bounds().Contains(x, y) {
		return blank
	}
	return c.cells[y][x]
}

// Text writes a string horizontally starting at (x, y), clipped to the canvas.
func (c *Canvas) Text(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// TextCentered draws text centered horizontally at row y.
func (c *Canvas) TextCentered(y int, text string, color Color) {
	c.Text((c.width-utf8.RuneCountInString(text))/2, y, text, color)
}

// Fits reports whether text placed at (x, y) lands on blank cells only.
func (c *Canvas) Fits(x, y int, text string) bool {
	n := utf8.RuneCountInString(text)
	if !c.Bounds().Contains(x, y) || !c.Bounds().Contains(x+n-1, y) {
		return false
	}
	for i := 0; i < n; i++ {
		if c.cells[y][x+i] != blank {
			return false
		}
	}
	return true
}

// Box draws a box outline using box-drawing characters.
func (c *Canvas) Box(r Rect, color Color) {
	if r.W < 2 || r.H < 2 {
		return
	}

	c.Set(r.X, r.Y, '┌', color)
	c.Set(r.Right()-1, r.Y, '┐', color)
	c.Set(r.X, r.Bottom()-1, '└', color)
	c.Set(r.Right()-1, r.Bottom()-1, '┘', color)

	for x := r.X + 1; x < r.Right()-1; x++ {
		c.Set(x, r.Y, '─', color)
		c.Set(x, r.Bottom()-1, '─', color)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.Set(r.X, y, '│', color)
		c.Set(r.Right()-1, y, '│', color)
	}
}

// String returns the canvas runes without color, rows joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}

// Row returns the runes of row y, or spaces when out of range.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
