package games

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrUnknownGame = errors.New("games: unknown game")

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() Game)
)

// Register makes a game constructor available to New under 'name'.
// Game packages call it from init, so selecting the catalog is a matter
// of blank imports. Registering the same name twice panics.
func Register(name string, factory func() Game) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("games: Register with a nil factory")
	}
	if _, dup := registry[name]; dup {
		panic("games: Register called twice for " + name)
	}
	registry[name] = factory
}

// New creates a fresh instance of the named game
func New(name string) (Game, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, name)
	}
	return factory(), nil
}

// Names lists the registered games in sorted order
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
