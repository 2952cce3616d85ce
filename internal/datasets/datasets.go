// Package datasets provides a registry of named city datasets.
// Built-in datasets register themselves in init(), so commands can list
// and load them without hardcoded file paths.
package datasets

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/shimonopoly/internal/cities"
)

// ErrUnknown is returned for dataset IDs that were never registered.
var ErrUnknown = errors.New("unknown dataset")

// Dataset is a named JSONL city source.
type Dataset struct {
	ID    string // Used by --dataset and the config file
	Title string
	Data  func() []byte
}

// Info contains metadata about a registered dataset.
type Info struct {
	ID    string
	Title string
	Lines int
}

var (
	sets = make(map[string]Dataset)
	mu   sync.RWMutex
)

// Register adds a dataset to the registry.
// Panics if a dataset with the same ID is already registered.
func Register(d Dataset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sets[d.ID]; exists {
		panic(fmt.Sprintf("datasets: dataset %q already registered", d.ID))
	}
	sets[d.ID] = d
}

// List returns information about all registered datasets, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(sets))
	for id, d := range sets {
		result = append(result, Info{
			ID:    id,
			Title: d.Title,
			Lines: countLines(d.Data()),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a dataset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sets[id]
	return ok
}

// Raw returns the JSONL contents of a dataset.
func Raw(id string) ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := sets[id]
	if !ok {
		return nil, fmt.Errorf("datasets: %q: %w", id, ErrUnknown)
	}
	return d.Data(), nil
}

// Load parses a dataset with the given loader.
// Each call returns fresh City values.
func Load(id string, loader *cities.Loader) ([]*cities.City, []cities.Warning, error) {
	data, err := Raw(id)
	if err != nil {
		return nil, nil, err
	}
	all, warnings := loader.Parse(data)
	return all, warnings, nil
}

func countLines(data []byte) int {
	n := 0
	for i, b := range data {
		if b == '\n' || (i == len(data)-1) {
			n++
		}
	}
	return n
}
