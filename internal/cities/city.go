// Package cities loads city records and manages the working set of a game
// session: selection, damage assignment, lookup and restoration flags.
package cities

import (
	"encoding/json"
	"errors"
)

// ErrInvalidArgument is returned for arguments outside their allowed range,
// such as a damage fraction outside [0.5, 1.0].
var ErrInvalidArgument = errors.New("invalid argument")

// City is a single city on the map.
// Damage and restoration flags are owned by the Registry; other packages
// only read them.
type City struct {
	Name       string
	Population float64 // Thousands of inhabitants in the bundled datasets
	Lat        float64
	Lon        float64

	damaged  bool
	restored bool
}

// NewCity creates an undamaged city.
func NewCity(name string, population, lat, lon float64) *City {
	return &City{
		Name:       name,
		Population: population,
		Lat:        lat,
		Lon:        lon,
	}
}

// Damaged reports whether the city was damaged at session start.
func (c *City) Damaged() bool {
	return c.damaged
}

// Restored reports whether the city has been restored.
func (c *City) Restored() bool {
	return c.restored
}

// NeedsRestore reports whether the city is damaged and not yet restored.
func (c *City) NeedsRestore() bool {
	return c.damaged && !c.restored
}

// Coordinates returns the city position in degrees.
func (c *City) Coordinates() (lat, lon float64) {
	return c.Lat, c.Lon
}

type cityJSON struct {
	Name       string  `json:"name"`
	Population float64 `json:"population"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Damaged    bool    `json:"damaged"`
	Restored   bool    `json:"restored"`
}

// MarshalJSON includes the damage and restoration flags.
func (c *City) MarshalJSON() ([]byte, error) {
	return json.Marshal(cityJSON{
		Name:       c.Name,
		Population: c.Population,
		Lat:        c.Lat,
		Lon:        c.Lon,
		Damaged:    c.damaged,
		Restored:   c.restored,
	})
}
