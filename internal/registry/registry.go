// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the platform
// to list and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Variant is a named configuration of the snake engine.
// Apply adjusts a copy of the loaded config (e.g. the boundary policy).
type Variant struct {
	ID    string
	Title string
	Apply func(cfg *config.SnakeConfig)
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant without id")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant registered under id.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Configure applies variant id to a copy of cfg.
func Configure(id string, cfg config.SnakeConfig) (config.SnakeConfig, error) {
	v, err := Lookup(id)
	if err != nil {
		return cfg, err
	}
	if v.Apply != nil {
		v.Apply(&cfg)
	}
	return cfg, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
