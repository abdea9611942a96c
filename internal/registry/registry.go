// Package registry provides a global registry of match frontends.
// Frontends register themselves in init() functions, so the command line can
// list and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/submarines3d/internal/core"
	"github.com/vovakirdan/submarines3d/internal/games/submarines"
)

// Env is what a frontend runs with besides the session itself.
type Env struct {
	In      io.Reader
	Out     io.Writer
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Frontend presents a match to the players and feeds their input to the
// session until it is done.
type Frontend interface {
	// ID returns a unique identifier used by "play --ui" (e.g. "line", "tui").
	ID() string

	// Title returns a human-readable name for "list".
	Title() string

	// Run blocks until the session is done or the input ends.
	Run(sess *submarines.Session, env Env) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered frontends sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
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
