package canvas

import "math"

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Locatable is anything with geographic coordinates in degrees.
type Locatable interface {
	Coordinates() (lat, lon float64)
}

// Bounds is a lat/lon bounding box.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// BoundsOf returns the smallest box containing every item.
// The zero Bounds is returned for an empty slice.
func BoundsOf[T Locatable](items []T) Bounds {
	if len(items) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	for _, it := range items {
		lat, lon := it.Coordinates()
		b.MinLat = math.Min(b.MinLat, lat)
		b.MaxLat = math.Max(b.MaxLat, lat)
		b.MinLon = math.Min(b.MinLon, lon)
		b.MaxLon = math.Max(b.MaxLon, lon)
	}
	return b
}

// Projection maps coordinates inside Bounds onto a canvas area using an
// equirectangular projection. North is up.
type Projection struct {
	Bounds Bounds
	Area   Rect
}

// Project returns the cell for a coordinate, clamped to the area.
// A zero-width span maps to the middle of the area.
func (p Projection) Project(lat, lon float64) (x, y int) {
	x = p.Area.X + scale(lon-p.Bounds.MinLon, p.Bounds.MaxLon-p.Bounds.MinLon, p.Area.W)
	y = p.Area.Y + scale(p.Bounds.MaxLat-lat, p.Bounds.MaxLat-p.Bounds.MinLat, p.Area.H)
	return x, y
}

func scale(offset, span float64, cells int) int {
	if cells <= 1 {
		return 0
	}
	if span <= 0 {
		return (cells - 1) / 2
	}
	v := int(math.Round(offset / span * float64(cells-1)))
	return Clamp(v, 0, cells-1)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
