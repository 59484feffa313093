// Package registry provides a global registry of game frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and launch them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrUnknownFrontend is wrapped by Create for an unregistered id.
var ErrUnknownFrontend = errors.New("registry: unknown frontend")

// Frontend is the interface that every way of presenting the game implements.
// A frontend owns its event loop: it builds a snake.Controller from the Env,
// maps its native input to core actions, drives the controller's ticks and
// draws its snapshots.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g., "tui").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, env Env) error
}

// Env is everything a frontend needs from the CLI.
type Env struct {
	Config config.SnakeConfig
	Store  snake.HighScoreStore
	Logger *log.Logger
	Seed   int64         // 0 seeds from the clock
	Sound  snake.Listener // nil when sound is off
}

// ControllerOptions returns the controller options described by the
// environment, followed by extra.
func (e Env) ControllerOptions(extra ...snake.Option) []snake.Option {
	opts := []snake.Option{
		snake.WithSettings(e.Config.Settings()),
	}
	if e.Seed != 0 {
		opts = append(opts, snake.WithSeed(e.Seed))
	}
	if e.Store != nil {
		opts = append(opts, snake.WithStore(e.Store))
	}
	if e.Logger != nil {
		opts = append(opts, snake.WithLogger(e.Logger))
	}
	if e.Sound != nil {
		opts = append(opts, snake.WithListener(e.Sound))
	}
	return append(opts, extra...)
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFrontend, id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
