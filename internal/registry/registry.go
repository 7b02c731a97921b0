// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, so the platform can list
// and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Variant is a named game configuration.
type Variant struct {
	ID          string // Used for CLI arguments and score storage
	Title       string // Human-readable name
	Description string
	Config      core.GameConfig
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if the ID is already taken or the config is invalid.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if err := v.Config.Validate(); err != nil {
		panic(fmt.Sprintf("registry: variant %q: %v", v.ID, err))
	}
	variants[v.ID] = v
}

// List returns all registered variants sorted by ID.
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

// Get looks up a variant by ID.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
