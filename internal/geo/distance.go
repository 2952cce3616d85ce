// Package geo provides great-circle distance helpers for city coordinates.
package geo

import "math"

// EarthRadiusMiles is the mean Earth radius used by Distance.
const EarthRadiusMiles = 3959.0

// Locatable is anything with a position that can be compared by identity.
// Pointer types satisfy comparable, so *cities.City matches by address.
type Locatable interface {
	comparable
	Coordinates() (lat, lon float64)
}

// Distance returns the haversine distance in miles between two points given
// in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRad(lat1)
	lat2Rad := toRad(lat2)
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// WithinRadius returns the candidates at most radiusMiles from center.
// The center itself is skipped when it appears among the candidates.
// Input order is preserved.
func WithinRadius[T Locatable](center T, candidates []T, radiusMiles float64) []T {
	lat, lon := center.Coordinates()

	result := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if c == center {
			continue
		}
		cLat, cLon := c.Coordinates()
		if Distance(lat, lon, cLat, cLon) <= radiusMiles {
			result = append(result, c)
		}
	}
	return result
}

// CountWithinRadius is WithinRadius without the allocation.
func CountWithinRadius[T Locatable](center T, candidates []T, radiusMiles float64) int {
	lat, lon := center.Coordinates()

	n := 0
	for _, c := range candidates {
		if c == center {
			continue
		}
		cLat, cLon := c.Coordinates()
		if Distance(lat, lon, cLat, cLon) <= radiusMiles {
			n++
		}
	}
	return n
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
