package cities

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/vovakirdan/shimonopoly/internal/rng"
)

// Damage fraction bounds accepted by Registry.Damage.
const (
	MinDamageFraction = 0.5
	MaxDamageFraction = 1.0
)

// Registry owns the working set of cities for one session.
// It is the only mutator of city flags; every query returns the same *City
// values, so a restoration is visible through all of them.
type Registry struct {
	all     []*City
	random  *rng.Source
	working []*City
}

// NewRegistry creates a registry over all loaded cities.
// The seed drives both selection and damage assignment.
func NewRegistry(all []*City, seed int64) *Registry {
	return &Registry{
		all:    all,
		random: rng.New(seed),
	}
}

// Select replaces the working set with min(count, total) cities taken from
// a shuffled copy of all cities, and returns it.
func (r *Registry) Select(count int) []*City {
	n := max(min(count, len(r.all)), 0)

	shuffled := rng.ShuffleSlice(r.random, slices.Clone(r.all))
	r.working = shuffled[:n:n]

	return r.working
}

// Damage flags round(len(working) * fraction) cities as damaged, chosen by
// shuffling a copy of the working set. The fraction must lie in
// [MinDamageFraction, MaxDamageFraction]; otherwise nothing is touched.
// Calling Damage more than once per session is unsupported.
func (r *Registry) Damage(fraction float64) error {
	if math.IsNaN(fraction) || fraction < MinDamageFraction || fraction > MaxDamageFraction {
		return fmt.Errorf("cities: damage fraction %v must be between %v and %v: %w",
			fraction, MinDamageFraction, MaxDamageFraction, ErrInvalidArgument)
	}

	count := int(math.Round(float64(len(r.working)) * fraction))

	shuffled := rng.ShuffleSlice(r.random, slices.Clone(r.working))
	for _, c := range shuffled[:count] {
		c.damaged = true
	}

	return nil
}

// MarkRestored flags a damaged, unrestored working-set city as restored.
// It returns false and changes nothing for any other city.
func (r *Registry) MarkRestored(c *City) bool {
	if c == nil || !c.NeedsRestore() || !slices.Contains(r.working, c) {
		return false
	}
	c.restored = true
	return true
}

// FindByName returns the working-set city whose name matches after trimming,
// ignoring case. Empty names never match.
func (r *Registry) FindByName(name string) (*City, bool) {
	search := strings.TrimSpace(name)
	if search == "" {
		return nil, false
	}

	for _, c := range r.working {
		if strings.EqualFold(c.Name, search) {
			return c, true
		}
	}
	return nil, false
}

// DamagedUnrestored returns damaged cities still awaiting restoration.
func (r *Registry) DamagedUnrestored() []*City {
	return r.filter((*City).NeedsRestore)
}

// Restored returns restored cities.
func (r *Registry) Restored() []*City {
	return r.filter((*City).Restored)
}

// Damaged returns every damaged city, restored or not.
func (r *Registry) Damaged() []*City {
	return r.filter((*City).Damaged)
}

// All returns the working set.
func (r *Registry) All() []*City {
	return r.working
}

// Len returns the size of the working set.
func (r *Registry) Len() int {
	return len(r.working)
}

func (r *Registry) filter(keep func(*City) bool) []*City {
	result := make([]*City, 0, len(r.working))
	for _, c := range r.working {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}
