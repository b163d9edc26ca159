// Package registry is the global table of game factories.
// Games register themselves in init() so frontends can list and create
// them by ID without importing each game.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is implemented by every toy. Games are pure logic: the platform owns
// the frame loop, input mapping and drawing to the real output.
type Game interface {
	// ID returns a unique identifier such as "snake" or "shooter".
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick: apply input, move,
	// resolve collisions, remove, spawn.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// AssetUser is implemented by games that draw from the asset store.
// The platform loads the store once before the loop and hands it over;
// a load error stops startup.
type AssetUser interface {
	// UseAssets resolves the handles the game needs. Missing optional
	// assets are replaced by built-in fallbacks; missing required ones
	// return an error.
	UseAssets(store *assets.Store) error
}

// Configurable is implemented by games tuned from a YAML file.
type Configurable interface {
	// Configure loads the game's tuning. An empty path uses the default
	// search order; an empty preset keeps the file's difficulty block.
	Configure(path string, preset config.DifficultyPreset) error
}

// Options are the startup inputs Prepare hands to a game.
type Options struct {
	Configs map[string]string // Game ID to custom YAML path
	Preset  config.DifficultyPreset
	Assets  *assets.Store
}

// ConfigFor returns the custom config path for a game, or "" for the
// default search order.
func (o Options) ConfigFor(id string) string {
	return o.Configs[id]
}

// Prepare runs the optional Configurable and AssetUser hooks on g.
// Frontends call it once after Create and before the first Reset.
func Prepare(g Game, opts Options) error {
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(opts.ConfigFor(g.ID()), opts.Preset); err != nil {
			return fmt.Errorf("registry: configure %s: %w", g.ID(), err)
		}
	}
	if u, ok := g.(AssetUser); ok {
		store := opts.Assets
		if store == nil {
			store = assets.New()
		}
		if err := u.UseAssets(store); err != nil {
			return fmt.Errorf("registry: assets for %s: %w", g.ID(), err)
		}
	}
	return nil
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
