package routing

import (
	"fmt"
	"sort"
	"sync"

	pathevaluate "github.com/chocolatedesue/satnet/path_evaluating"
)

// Variant couples a route computer factory with the evaluator that knows
// how to read its tables.
type Variant struct {
	Name string
	// NeedsLayout marks the variants that require a (Kp, Kn) domain
	// decomposition in the configuration.
	NeedsLayout  bool
	NewComputer  func(id int, env *Env) Computer
	NewEvaluator func(env *Env, maxRecurse int) pathevaluate.Evaluator
}

var (
	registry     = make(map[string]Variant)
	registryLock sync.RWMutex
)

// Register adds a variant under its name. Registering the same name twice
// is an error.
func Register(v Variant) error {
	registryLock.Lock()
	defer registryLock.Unlock()

	if _, exists := registry[v.Name]; exists {
		return fmt.Errorf("routing variant '%s' is already registered", v.Name)
	}
	registry[v.Name] = v
	return nil
}

// Get retrieves a variant by name.
func Get(name string) (Variant, error) {
	registryLock.RLock()
	defer registryLock.RUnlock()

	v, exists := registry[name]
	if !exists {
		return Variant{}, fmt.Errorf("routing variant '%s' not found in registry", name)
	}
	return v, nil
}

// List returns all registered variant names, sorted.
func List() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
