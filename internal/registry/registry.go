// Package registry keeps the ordered campaign of level definitions.
// Built-in levels register themselves in init() functions; level packs loaded
// from disk are appended at startup. The simulation selects levels by index.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-twinblade/internal/level"
)

// ErrUnknownLevel is returned when a lookup matches no registered level.
var ErrUnknownLevel = errors.New("registry: unknown level")

// LevelInfo contains display metadata about a registered level.
type LevelInfo struct {
	Index   int
	ID      string
	Name    string
	Source  string
	Enemies []string
}

var (
	levels []level.Definition
	byID   = make(map[string]int)
	mu     sync.RWMutex
)

// Register appends a level to the campaign.
// Panics if a level with the same ID is already registered or the definition
// does not validate; both are programming errors for built-ins.
func Register(def level.Definition) {
	if err := Add(def); err != nil {
		panic(err)
	}
}

// Add appends a level to the campaign, returning an error instead of panicking.
func Add(def level.Definition) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[def.ID]; exists {
		return fmt.Errorf("registry: level %q already registered", def.ID)
	}
	byID[def.ID] = len(levels)
	levels = append(levels, def)
	return nil
}

// List returns information about all registered levels in campaign order.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(levels))
	for i, def := range levels {
		result = append(result, LevelInfo{
			Index:   i,
			ID:      def.ID,
			Name:    def.Name,
			Source:  def.Source,
			Enemies: append([]string(nil), def.Enemies...),
		})
	}
	return result
}

// Count returns the number of registered levels.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(levels)
}

// Get returns the level at the given campaign index.
func Get(index int) (level.Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	if index < 0 || index >= len(levels) {
		return level.Definition{}, fmt.Errorf("%w: index %d (have %d)", ErrUnknownLevel, index, len(levels))
	}
	return levels[index], nil
}

// IndexOf returns the campaign index of the level with the given ID.
func IndexOf(id string) (int, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, id)
	}
	return i, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
