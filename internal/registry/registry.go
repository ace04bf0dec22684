// Package registry provides a global registry for dismissal challenge factories.
// Challenges register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-alarm/internal/core"
)

// Challenge is the interface every alarm-dismissal challenge implements.
// Challenges contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Challenge interface {
	// ID returns a unique identifier (e.g., "chase", "shake").
	// Used for CLI commands, alarm records and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the challenge state.
	Reset(cfg core.RuntimeConfig)

	// Input applies one input event synchronously. Each event produces at
	// most one state update; events while frozen are ignored.
	Input(a core.Action) core.StepResult

	// Tick advances the challenge by one periodic step.
	Tick() core.StepResult

	// TickInterval is the period at which the platform must call Tick.
	TickInterval() time.Duration

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current challenge state.
	State() core.GameState
}

// ChallengeInfo describes a registered challenge.
type ChallengeInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh challenge instance.
type Factory func() Challenge

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a challenge factory under id. It is meant to be called from
// init and panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: challenge %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered challenge sorted by ID.
func List() []ChallengeInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ChallengeInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, ChallengeInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b ChallengeInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new instance of the challenge registered under id.
func Create(id string) (Challenge, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown challenge %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// Title returns the display name for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}
