package tui

import (
	"github.com/vovakirdan/shimonopoly/internal/canvas"
	"github.com/vovakirdan/shimonopoly/internal/cities"
	"github.com/vovakirdan/shimonopoly/internal/game"
)

// Map markers.
const (
	markerIntact   = '·'
	markerDamaged  = '✖'
	markerRestored = '●'
)

// drawMap draws the working set inside a box covering area. Damaged cities
// are labelled when there is room; highlight marks the last restored city.
func drawMap(c *canvas.Canvas, area canvas.Rect, snap game.Snapshot, highlight *cities.City) {
	c.Box(area, canvas.ColorBorder)

	inner := area.Inset(1)
	if inner.W <= 0 || inner.H <= 0 || len(snap.Cities) == 0 {
		return
	}

	proj := canvas.Projection{Bounds: canvas.BoundsOf(snap.Cities), Area: inner}

	// Markers first so labels never cover a city
	for _, city := range snap.Cities {
		x, y := proj.Project(city.Lat, city.Lon)
		r, color := marker(city)
		if city == highlight {
			color = canvas.ColorHighlight
		}
		c.Set(x, y, r, color)
	}

	// Labels only land on blank cells, so they never cover the border.
	for _, city := range snap.Damaged {
		x, y := proj.Project(city.Lat, city.Lon)
		label := truncate(city.Name, 14)
		left := x - 1 - len([]rune(label))
		switch {
		case c.Fits(x+2, y, label):
			c.Text(x+2, y, label, canvas.ColorLabel)
		case c.Fits(left, y, label):
			c.Text(left, y, label, canvas.ColorLabel)
		}
	}
}

func marker(city *cities.City) (rune, canvas.Color) {
	switch {
	case city.Restored():
		return markerRestored, canvas.ColorRestored
	case city.Damaged():
		return markerDamaged, canvas.ColorDamaged
	default:
		return markerIntact, canvas.ColorIntact
	}
}
